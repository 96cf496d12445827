package processor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agentd-io/agentd/pkg/models"
)

const (
	openTag  = "<function_calls>"
	closeTag = "</function_calls>"
)

var (
	invokeOpenRe = regexp.MustCompile(`<invoke\s+name="([^"]+)"\s*>`)
	paramOpenRe  = regexp.MustCompile(`<parameter\s+name="([^"]+)"\s*>`)
)

// ExtractBlocks scans text for complete <function_calls>…</function_calls>
// blocks. It returns the inclusive block slices in order and the remaining
// text with the consumed blocks removed. An opening tag without its closer
// yet is left in the remainder so a later scan can pick it up.
func ExtractBlocks(text string) (blocks []string, remainder string) {
	remainder = text
	for {
		start := strings.Index(remainder, openTag)
		if start < 0 {
			return blocks, remainder
		}
		end := strings.Index(remainder[start:], closeTag)
		if end < 0 {
			return blocks, remainder
		}
		end = start + end + len(closeTag)
		blocks = append(blocks, remainder[start:end])
		remainder = remainder[:start] + remainder[end:]
	}
}

// ParseBlock parses one complete block into canonical tool calls. Each
// <invoke> yields one call; parameter values are their inner text.
func ParseBlock(block string) ([]models.ToolCall, []models.ParsingDetails, error) {
	inner := strings.TrimPrefix(block, openTag)
	inner = strings.TrimSuffix(inner, closeTag)

	var (
		calls   []models.ToolCall
		details []models.ParsingDetails
	)

	rest := inner
	for {
		loc := invokeOpenRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		name := rest[loc[2]:loc[3]]
		body, after, err := innerText(rest[loc[1]:], "invoke")
		if err != nil {
			return nil, nil, fmt.Errorf("malformed invoke %q: %w", name, err)
		}

		args := make(map[string]any)
		elements := make(map[string]string)
		paramRest := body
		for {
			ploc := paramOpenRe.FindStringSubmatchIndex(paramRest)
			if ploc == nil {
				break
			}
			pname := paramRest[ploc[2]:ploc[3]]
			pval, pafter, err := innerText(paramRest[ploc[1]:], "parameter")
			if err != nil {
				return nil, nil, fmt.Errorf("malformed parameter %q of %q: %w", pname, name, err)
			}
			args[pname] = pval
			elements[pname] = pval
			paramRest = pafter
		}

		functionName := strings.ReplaceAll(name, "-", "_")
		calls = append(calls, models.ToolCall{
			FunctionName: functionName,
			Arguments:    args,
			XMLTagName:   models.HyphenatedName(functionName),
		})
		details = append(details, models.ParsingDetails{
			RawXML:      block,
			Attributes:  map[string]string{"name": name},
			Elements:    elements,
			TextContent: strings.TrimSpace(body),
			RootContent: strings.TrimSpace(inner),
		})

		rest = after
	}

	if len(calls) == 0 {
		return nil, nil, fmt.Errorf("block contains no invoke elements")
	}
	return calls, details, nil
}

// RenderCall renders a canonical tool call back into the authoritative XML
// form. Parsing then re-rendering preserves the function name and the
// argument key set.
func RenderCall(call models.ToolCall) string {
	var b strings.Builder
	b.WriteString(openTag)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<invoke name="%s">`, call.FunctionName)
	b.WriteString("\n")
	for _, key := range sortedKeys(call.Arguments) {
		fmt.Fprintf(&b, `<parameter name="%s">%v</parameter>`, key, call.Arguments[key])
		b.WriteString("\n")
	}
	b.WriteString("</invoke>\n")
	b.WriteString(closeTag)
	return b.String()
}

// innerText returns the content up to the matching close tag of element,
// tolerating nested same-name tags by a depth counter, plus the text after
// the close tag.
func innerText(s, element string) (body, after string, err error) {
	openMark := "<" + element
	closeMark := "</" + element + ">"

	depth := 1
	i := 0
	for {
		nextOpen := indexFrom(s, openMark, i)
		nextClose := indexFrom(s, closeMark, i)
		if nextClose < 0 {
			return "", "", fmt.Errorf("missing closing tag %s", closeMark)
		}
		if nextOpen >= 0 && nextOpen < nextClose {
			depth++
			i = nextOpen + len(openMark)
			continue
		}
		depth--
		if depth == 0 {
			return s[:nextClose], s[nextClose+len(closeMark):], nil
		}
		i = nextClose + len(closeMark)
	}
}

func indexFrom(s, sub string, from int) int {
	if from >= len(s) {
		return -1
	}
	idx := strings.Index(s[from:], sub)
	if idx < 0 {
		return -1
	}
	return from + idx
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
