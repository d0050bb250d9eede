package search

import (
	"strconv"
	"strings"
)

const defaultLimit = 10

// Query is the structured form of a /find command typed in a channel.
// It decouples the raw chat input from the index engine requirements.
type Query struct {
	RawInput string
	Terms    string
	Limit    int
}

// ParseQuery extracts command-line style arguments from a raw input.
// Example: /find "horário" --limit 5
func ParseQuery(input string) Query {
	query := Query{RawInput: input, Limit: defaultLimit}

	parts := strings.Fields(input)
	var terms []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			if strings.TrimPrefix(part, "--") == "limit" {
				if limit, err := strconv.Atoi(parts[i+1]); err == nil && limit > 0 {
					query.Limit = limit
				}
			}
			i++
			continue
		}
		if strings.HasPrefix(part, "/") {
			continue
		}
		terms = append(terms, strings.Trim(part, `"`))
	}

	query.Terms = strings.Join(terms, " ")
	return query
}
