package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// knowledgeBaseFile is the on-disk shape of the knowledge base:
// a root key holding category name -> ordered list of path strings.
type knowledgeBaseFile struct {
	Paths map[string][]string `json:"UMS_Chatbot_Paths"`
}

// LoadEntries reads the categorized knowledge-base file and flattens all
// category path lists into one ordered slice. Categories are walked in
// sorted order so the flattened sequence is stable across runs.
func LoadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}

	var kb knowledgeBaseFile
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}
	if kb.Paths == nil {
		return nil, fmt.Errorf("knowledge base %s has no UMS_Chatbot_Paths mapping", path)
	}

	categories := make([]string, 0, len(kb.Paths))
	for category := range kb.Paths {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var entries []Entry
	for _, category := range categories {
		entries = append(entries, kb.Paths[category]...)
	}

	return entries, nil
}
