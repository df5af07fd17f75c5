package mockhttp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scriptOutcome is one entry in a YAML outcome script. Exactly one of
// error or status must be set.
type scriptOutcome struct {
	Status  int               `yaml:"status"`
	Body    string            `yaml:"body"`
	Headers map[string]string `yaml:"headers"`
	Error   string            `yaml:"error"`
}

// LoadScript builds a mock client pre-loaded from a YAML outcome file.
// The file is a list of outcomes, enqueued in document order:
//
//	- status: 200
//	  body: '{"ok": true}'
//	  headers:
//	    Content-Type: application/json
//	- error: connection failed
//	- status: 503
func LoadScript(path string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script file: %w", err)
	}

	var outcomes []scriptOutcome
	if err := yaml.Unmarshal(data, &outcomes); err != nil {
		return nil, fmt.Errorf("parse script file: %w", err)
	}

	client := New()
	for i, o := range outcomes {
		switch {
		case o.Error != "" && o.Status != 0:
			return nil, fmt.Errorf("script outcome %d: both error and status set", i)
		case o.Error != "":
			client.QueueError(o.Error)
		case o.Status < 100 || o.Status > 599:
			return nil, fmt.Errorf("script outcome %d: invalid status %d", i, o.Status)
		default:
			resp := NewResponse(o.Status).BodyString(o.Body)
			for k, v := range o.Headers {
				resp.Header(k, v)
			}
			client.QueueResponse(resp)
		}
	}
	return client, nil
}
