package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

var sessionId string

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper. Captures the session id the server hands out so the whole
// run stays in one workspace.
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if sessionId != "" {
		req.Header.Set("X-Session-Id", sessionId)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if id := resp.Header.Get("X-Session-Id"); id != "" {
		sessionId = id
	}

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("Starting MedicQuery API smoke test\n")

	// 1. Search with a matching query
	color.Yellow("\n1. Search: q=pneumonia")
	resp, body, err := sendRequest("GET", "/search/v1?q=pneumonia", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var searchResp map[string]interface{}
	json.Unmarshal(body, &searchResp)
	prettyPrint(searchResp)

	// 2. Search with an empty query must yield zero results
	color.Yellow("\n2. Search: empty q")
	resp, body, err = sendRequest("GET", "/search/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &searchResp)
	prettyPrint(searchResp)

	// 3. Fusion state of a fresh session
	color.Yellow("\n3. Fusion: initial state")
	resp, body, err = sendRequest("GET", "/fusion/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s (session %s)", resp.Status, sessionId)
	var fusionResp map[string]interface{}
	json.Unmarshal(body, &fusionResp)
	prettyPrint(fusionResp)

	// 4. Annotation without a selected image must be rejected
	color.Yellow("\n4. Fusion: annotation without selection (expect 409)")
	resp, body, err = sendRequest("POST", "/fusion/v1/annotations", map[string]interface{}{"x": 10, "y": 20})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &fusionResp)
	prettyPrint(fusionResp)

	// 5. Summarize with empty text must be rejected before the LLM call
	color.Yellow("\n5. Summarize: empty text (expect 400)")
	resp, body, err = sendRequest("POST", "/summarize/v1", map[string]interface{}{"text": ""})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var summaryResp map[string]interface{}
	json.Unmarshal(body, &summaryResp)
	prettyPrint(summaryResp)

	// 6. Summarize real text (requires a running LLM provider)
	color.Yellow("\n6. Summarize: clinical text")
	resp, body, err = sendRequest("POST", "/summarize/v1", map[string]interface{}{
		"text": "Male, 67, fever and productive cough for three days. CXR shows right lower lobe opacity. CRP elevated. Started on empiric ceftriaxone and azithromycin.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &summaryResp)
	prettyPrint(summaryResp)

	color.Cyan("\nDone.")
}
