// seed_session.go — standalone script to seed a risk register CSV into a
// running verdict instance.
//
// Usage:
//
//	go run scripts/seed_session.go -register /path/to/register.csv -api http://localhost:8700
//
// Expected columns: title,description,owner,likelihood,impact,selected_controls
// (selected_controls is a semicolon-separated list).
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

type riskPayload struct {
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Owner            string   `json:"owner,omitempty"`
	Likelihood       string   `json:"likelihood"`
	Impact           string   `json:"impact"`
	SelectedControls []string `json:"selected_controls,omitempty"`
}

func main() {
	registerPath := flag.String("register", "register.csv", "path to risk register CSV")
	apiURL := flag.String("api", "http://localhost:8700", "verdict API base URL")
	dryRun := flag.Bool("dry-run", false, "print risks without posting")
	flag.Parse()

	f, err := os.Open(*registerPath)
	if err != nil {
		log.Fatalf("open register: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("read header: %v", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"title", "likelihood", "impact"} {
		if _, ok := col[required]; !ok {
			log.Fatalf("register missing %q column", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var risks []riskPayload
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("read row: %v", err)
		}

		risk := riskPayload{
			Title:       field(row, "title"),
			Description: field(row, "description"),
			Owner:       field(row, "owner"),
			Likelihood:  field(row, "likelihood"),
			Impact:      field(row, "impact"),
		}
		if controls := field(row, "selected_controls"); controls != "" {
			for _, c := range strings.Split(controls, ";") {
				if c = strings.TrimSpace(c); c != "" {
					risk.SelectedControls = append(risk.SelectedControls, c)
				}
			}
		}
		if risk.Title == "" {
			continue
		}
		risks = append(risks, risk)
	}

	log.Printf("parsed %d risks from %s", len(risks), *registerPath)

	if *dryRun {
		for i, r := range risks {
			fmt.Printf("[%d] %s (likelihood=%s, impact=%s, controls=%s)\n",
				i+1, r.Title, r.Likelihood, r.Impact, strings.Join(r.SelectedControls, ";"))
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, risk := range risks {
		body, _ := json.Marshal(risk)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/risks", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", risk.Title, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", risk.Title, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", risk.Title, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}
