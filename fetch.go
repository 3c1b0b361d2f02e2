package aoc

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	sessionMu sync.Mutex
	sessions  = map[string]string{} // session file -> cookie value
)

func session(cfg Config) (string, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if s, ok := sessions[cfg.SessionFile]; ok {
		return s, nil
	}
	b, err := os.ReadFile(cfg.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	s := strings.TrimSpace(string(b))
	sessions[cfg.SessionFile] = s
	return s, nil
}

func request(cfg Config, method, url string, body io.Reader) (*http.Request, error) {
	s, err := session(cfg)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s})
	return req, nil
}

func doRequest(req *http.Request) (*http.Response, error) {
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", req.URL, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res, nil
}

// fileOrFetch returns the contents of filename, fetching url into it first if
// it does not exist yet.
func fileOrFetch(cfg Config, filename, url string) ([]byte, error) {
	if f, err := os.ReadFile(filename); err == nil {
		logger.Debugw("using cached file", "file", filename)
		return f, nil
	}

	logger.Infow("fetching", "url", url)
	body, err := fetch(cfg, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, fmt.Errorf("caching %s: %w", url, err)
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, fmt.Errorf("caching %s: %w", url, err)
	}
	return body, nil
}

func fetch(cfg Config, url string) ([]byte, error) {
	req, err := request(cfg, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	res, err := doRequest(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return io.ReadAll(res.Body)
}
