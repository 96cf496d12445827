package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlocks_CompleteBlock(t *testing.T) {
	text := `Sure.<function_calls><invoke name="list_files"><parameter name="path">/tmp</parameter></invoke></function_calls> done`

	blocks, rest := ExtractBlocks(text)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], `<invoke name="list_files">`)
	assert.Equal(t, "Sure. done", rest)
}

func TestExtractBlocks_PartialBlockLeftInRemainder(t *testing.T) {
	text := `thinking <function_calls><invoke name="a">`

	blocks, rest := ExtractBlocks(text)
	assert.Empty(t, blocks)
	assert.Equal(t, text, rest)
}

func TestExtractBlocks_MultipleBlocks(t *testing.T) {
	text := `<function_calls><invoke name="a"></invoke></function_calls>middle<function_calls><invoke name="b"></invoke></function_calls>`

	blocks, rest := ExtractBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "middle", rest)
}

func TestExtractBlocks_PassthroughWithoutBlocks(t *testing.T) {
	blocks, rest := ExtractBlocks("plain assistant text with <b>markup</b>")
	assert.Empty(t, blocks)
	assert.Equal(t, "plain assistant text with <b>markup</b>", rest)
}

func TestParseBlock_SingleInvoke(t *testing.T) {
	block := `<function_calls><invoke name="list_files"><parameter name="path">/tmp</parameter><parameter name="recursive">true</parameter></invoke></function_calls>`

	calls, details, err := ParseBlock(block)
	require.NoError(t, err)
	require.Len(t, calls, 1)

	assert.Equal(t, "list_files", calls[0].FunctionName)
	assert.Equal(t, "list-files", calls[0].XMLTagName)
	assert.Equal(t, "/tmp", calls[0].Arguments["path"])
	assert.Equal(t, "true", calls[0].Arguments["recursive"])

	require.Len(t, details, 1)
	assert.Equal(t, block, details[0].RawXML)
	assert.Equal(t, "list_files", details[0].Attributes["name"])
	assert.Equal(t, "/tmp", details[0].Elements["path"])
}

func TestParseBlock_HyphenatedInvokeName(t *testing.T) {
	block := `<function_calls><invoke name="web-search"><parameter name="query">golang</parameter></invoke></function_calls>`

	calls, _, err := ParseBlock(block)
	require.NoError(t, err)
	assert.Equal(t, "web_search", calls[0].FunctionName)
	assert.Equal(t, "web-search", calls[0].XMLTagName)
}

func TestParseBlock_MultipleInvokes(t *testing.T) {
	block := `<function_calls>` +
		`<invoke name="fetch"><parameter name="url">https://a</parameter></invoke>` +
		`<invoke name="fetch"><parameter name="url">https://b</parameter></invoke>` +
		`</function_calls>`

	calls, _, err := ParseBlock(block)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "https://a", calls[0].Arguments["url"])
	assert.Equal(t, "https://b", calls[1].Arguments["url"])
}

func TestParseBlock_NestedSameNameTagsInValue(t *testing.T) {
	block := `<function_calls><invoke name="write_file"><parameter name="content">a <parameter name="x">inner</parameter> b</parameter></invoke></function_calls>`

	calls, _, err := ParseBlock(block)
	require.NoError(t, err)
	assert.Equal(t, `a <parameter name="x">inner</parameter> b`, calls[0].Arguments["content"])
}

func TestParseBlock_NoInvokes(t *testing.T) {
	_, _, err := ParseBlock(`<function_calls>nothing here</function_calls>`)
	require.Error(t, err)
}

func TestParseBlock_MissingCloseTag(t *testing.T) {
	_, _, err := ParseBlock(`<function_calls><invoke name="a"><parameter name="x">v</parameter></function_calls>`)
	require.Error(t, err)
}

// Parsing then re-rendering preserves the function name and argument key set.
func TestRenderCall_RoundTrip(t *testing.T) {
	block := `<function_calls><invoke name="create_task"><parameter name="title">Ship it</parameter><parameter name="priority">high</parameter></invoke></function_calls>`

	calls, _, err := ParseBlock(block)
	require.NoError(t, err)

	rendered := RenderCall(calls[0])
	reparsed, _, err := ParseBlock(rendered)
	require.NoError(t, err)
	require.Len(t, reparsed, 1)

	assert.Equal(t, calls[0].FunctionName, reparsed[0].FunctionName)
	assert.ElementsMatch(t,
		keysOf(calls[0].Arguments), keysOf(reparsed[0].Arguments))
	assert.Equal(t, calls[0].Arguments, reparsed[0].Arguments)
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
