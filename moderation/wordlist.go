package moderation

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed censored/*.txt
var censoredFolder embed.FS

// Wordlist is the merged censored vocabulary plus the language codes of the
// files it was loaded from.
type Wordlist struct {
	Words     []string
	Languages []string
}

// LoadWordlist reads every embedded censored file, one word or phrase per
// line, deduplicated across languages.
func LoadWordlist() (Wordlist, error) {
	entries, err := fs.ReadDir(censoredFolder, "censored")
	if err != nil {
		return Wordlist{}, fmt.Errorf("reading censored lists: %w", err)
	}

	seen := make(map[string]struct{})
	var list Wordlist
	for _, entry := range entries {
		name := entry.Name()
		list.Languages = append(list.Languages, strings.TrimSuffix(name, path.Ext(name)))

		file, err := censoredFolder.Open(path.Join("censored", name))
		if err != nil {
			return Wordlist{}, err
		}
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word == "" {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			list.Words = append(list.Words, word)
		}
		if err := scanner.Err(); err != nil {
			_ = file.Close()
			return Wordlist{}, err
		}
		_ = file.Close()
	}
	return list, nil
}
