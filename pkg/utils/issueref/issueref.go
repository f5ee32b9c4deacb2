// Package issueref finds issues closed by commit messages and pull request bodies.
//
// The grammar is a closing keyword (close, closes, closed, fix, fixes, fixed, resolve,
// resolves, resolved; any case, optional colon) followed by one or more references
// separated by commas, "and", "&" or whitespace. A reference is "#12", "owner/repo#12"
// or a full issue/pull URL on a known host.
package issueref

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/crier/pkg/domain/model"
)

const defaultHost = "github.com"

var keywordPattern = regexp.MustCompile(`(?i)(?:^|[^\w/#])(close|closes|closed|fix|fixes|fixed|resolve|resolves|resolved):?[ \t]+`)

var separatorPattern = regexp.MustCompile(`^(?:[ \t]*,[ \t]*(?:and[ \t]+)?|[ \t]+and[ \t]+|[ \t]*&[ \t]*|[ \t]+)`)

// Parser extracts closed issue references. It is safe for concurrent use.
type Parser struct {
	refPattern *regexp.Regexp
}

// New creates a parser that accepts URL references on github.com and the extra hosts
func New(hosts ...string) *Parser {
	quoted := []string{regexp.QuoteMeta(defaultHost)}
	for _, h := range hosts {
		h = strings.TrimSpace(strings.ToLower(h))
		if h == "" || h == defaultHost {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(h))
	}

	// 1: slug of an URL reference, 2: number of an URL reference,
	// 3: optional slug of a short reference, 4: number of a short reference
	pattern := `^(?:https?://(?i:` + strings.Join(quoted, "|") + `)/([\w.-]+/[\w.-]+)/(?:issues|pull)/(\d+)` +
		`|([\w.-]+/[\w.-]+)?#(\d+))\b`

	return &Parser{refPattern: regexp.MustCompile(pattern)}
}

// Reference is one closing reference found in text
type Reference struct {
	// Slug is "owner/repo" when the reference is qualified, otherwise empty
	Slug   string
	Number int
}

// References returns every closing reference in text in order of appearance
func (p *Parser) References(text string) []Reference {
	var refs []Reference

	for _, loc := range keywordPattern.FindAllStringSubmatchIndex(text, -1) {
		rest := text[loc[1]:]
		for {
			m := p.refPattern.FindStringSubmatch(rest)
			if m == nil {
				break
			}

			ref, ok := toReference(m)
			if ok {
				refs = append(refs, ref)
			}

			rest = rest[len(m[0]):]
			sep := separatorPattern.FindString(rest)
			if sep == "" {
				break
			}
			rest = rest[len(sep):]
		}
	}

	return refs
}

func toReference(m []string) (Reference, bool) {
	slug, num := m[3], m[4]
	if m[2] != "" {
		slug, num = m[1], m[2]
	}

	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return Reference{}, false
	}
	return Reference{Slug: slug, Number: n}, true
}

// ClosedIssues returns unique numbers of issues in repo closed by text. References
// qualified with another repository are excluded.
func (p *Parser) ClosedIssues(text string, repo model.Repo) []int {
	var numbers []int
	seen := make(map[int]struct{})

	for _, ref := range p.References(text) {
		if ref.Slug != "" && !strings.EqualFold(ref.Slug, repo.FullName()) {
			continue
		}
		if _, ok := seen[ref.Number]; ok {
			continue
		}
		seen[ref.Number] = struct{}{}
		numbers = append(numbers, ref.Number)
	}

	return numbers
}

// ClosedIssuesIn applies ClosedIssues to every text and returns unique numbers in order
func (p *Parser) ClosedIssuesIn(texts []string, repo model.Repo) []int {
	var numbers []int
	seen := make(map[int]struct{})

	for _, text := range texts {
		for _, n := range p.ClosedIssues(text, repo) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			numbers = append(numbers, n)
		}
	}

	return numbers
}
