package main

import (
	"encoding/json"
	"log"
	"os"
)

// One-off maintenance tool: removes fully identical records from a
// data file written before the archiver deduplicated on merge. The
// first occurrence of each record is kept, order is preserved.

type post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: dedupe <data.json>")
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var posts []post
	if err := json.Unmarshal(data, &posts); err != nil {
		log.Fatalf("parsing %s: %v", path, err)
	}

	seen := make(map[post]bool, len(posts))
	deduped := make([]post, 0, len(posts))
	for _, p := range posts {
		if seen[p] {
			continue
		}
		seen[p] = true
		deduped = append(deduped, p)
	}

	if len(deduped) == len(posts) {
		log.Printf("%s: no duplicates found (%d posts)", path, len(posts))
		return
	}

	out, err := json.MarshalIndent(deduped, "", "    ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		log.Fatal(err)
	}

	log.Printf("%s: removed %d duplicate posts, %d remain", path, len(posts)-len(deduped), len(deduped))
}
