package feedagentctl

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Stdout     io.Writer
	Stderr     io.Writer
}

func Run(ctx context.Context, args []string, defaults Options) int {
	stdout := defaults.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := defaults.Stderr
	if stderr == nil {
		stderr = io.Discard
	}

	fs := flag.NewFlagSet("feedagentctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	baseURL := fs.String("base-url", firstNonEmpty(defaults.BaseURL, "http://localhost:8080"), "Feed agent API base URL")
	apiKey := fs.String("api-key", defaults.APIKey, "API key for authenticated requests")
	language := fs.String("lang", "", "Force answer language (en/ar), auto-detected when empty")
	rawJSON := fs.Bool("json", false, "Print the full JSON response instead of the answer text")
	timeout := fs.Duration("timeout", durationOr(defaults.Timeout, 15*time.Second), "HTTP timeout (e.g. 15s)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		writeUsage(stderr)
		return 2
	}

	client := defaults.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: *timeout}
	}

	command := strings.TrimSpace(fs.Arg(0))
	if command == "ask" {
		question := strings.TrimSpace(strings.Join(fs.Args()[1:], " "))
		if question == "" {
			_, _ = fmt.Fprintln(stderr, "ask requires a question, e.g. feedagentctl ask who sells the cheapest barley")
			return 2
		}
		return runAsk(ctx, client, *baseURL, *apiKey, *language, *rawJSON, question, stdout, stderr)
	}

	path := ""
	switch command {
	case "health":
		path = "/v1/health"
	case "ready":
		path = "/v1/ready"
	case "stats":
		path = "/v1/stats"
	case "examples":
		path = "/v1/examples"
	case "types":
		path = "/v1/products/types"
	case "countries":
		path = "/v1/products/countries"
	case "suppliers":
		path = "/v1/products/suppliers"
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n", command)
		writeUsage(stderr)
		return 2
	}

	endpoint := strings.TrimRight(*baseURL, "/") + path
	code, responseBody, err := doRequest(ctx, client, http.MethodGet, endpoint, *apiKey, nil)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "request failed: %v\n", err)
		return 1
	}
	if code >= 400 {
		_, _ = fmt.Fprintf(stderr, "http %d: %s\n", code, strings.TrimSpace(string(responseBody)))
		return 1
	}

	if pretty, ok := prettyJSON(responseBody); ok {
		_, _ = fmt.Fprintln(stdout, pretty)
		return 0
	}
	if len(responseBody) > 0 {
		_, _ = fmt.Fprintln(stdout, string(responseBody))
	}
	return 0
}

func runAsk(ctx context.Context, client *http.Client, baseURL, apiKey, language string, rawJSON bool, question string, stdout, stderr io.Writer) int {
	payload, err := json.Marshal(map[string]string{
		"query":    question,
		"language": language,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "encode request: %v\n", err)
		return 1
	}

	endpoint := strings.TrimRight(baseURL, "/") + "/v1/query"
	code, responseBody, err := doRequest(ctx, client, http.MethodPost, endpoint, apiKey, payload)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "request failed: %v\n", err)
		return 1
	}
	if code >= 400 {
		_, _ = fmt.Fprintf(stderr, "http %d: %s\n", code, strings.TrimSpace(string(responseBody)))
		return 1
	}

	if rawJSON {
		if pretty, ok := prettyJSON(responseBody); ok {
			_, _ = fmt.Fprintln(stdout, pretty)
			return 0
		}
		_, _ = fmt.Fprintln(stdout, string(responseBody))
		return 0
	}

	var answer struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(responseBody, &answer); err != nil {
		_, _ = fmt.Fprintf(stderr, "decode response: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(stdout, answer.Response)
	if !answer.Success {
		if answer.Error != "" {
			_, _ = fmt.Fprintln(stderr, answer.Error)
		}
		return 1
	}
	return 0
}

func doRequest(ctx context.Context, client *http.Client, method, url, apiKey string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.TrimSpace(apiKey) != "" {
		req.Header.Set("X-API-Key", strings.TrimSpace(apiKey))
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, responseBody, nil
}

func prettyJSON(raw []byte) (string, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", false
	}
	var anyValue any
	if err := json.Unmarshal(raw, &anyValue); err != nil {
		return "", false
	}
	formatted, err := json.MarshalIndent(anyValue, "", "  ")
	if err != nil {
		return "", false
	}
	return string(formatted), true
}

func writeUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: feedagentctl [flags] <command>")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "commands:")
	_, _ = fmt.Fprintln(w, "  ask <question>   POST /v1/query and print the localized answer")
	_, _ = fmt.Fprintln(w, "  health           GET /v1/health")
	_, _ = fmt.Fprintln(w, "  ready            GET /v1/ready")
	_, _ = fmt.Fprintln(w, "  stats            GET /v1/stats")
	_, _ = fmt.Fprintln(w, "  examples         GET /v1/examples")
	_, _ = fmt.Fprintln(w, "  types            GET /v1/products/types")
	_, _ = fmt.Fprintln(w, "  countries        GET /v1/products/countries")
	_, _ = fmt.Fprintln(w, "  suppliers        GET /v1/products/suppliers")
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return strings.TrimSpace(a)
	}
	return b
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return fallback
}
