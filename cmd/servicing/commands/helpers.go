// Package commands implements the servicing CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/loanstreet/servicing-go/pkg/servicing"
	"github.com/loanstreet/servicing-go/pkg/servicingclient"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatTable = "table"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired = errors.New("authentication token is required (use --token or SERVICING_TOKEN)")
	ErrEmailRequired = errors.New("email is required")
)

// logrusLogger adapts logrus to the servicing.Logger interface.
type logrusLogger struct {
	logger *logrus.Logger
}

func newLogrusLogger(debug bool) *logrusLogger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &logrusLogger{logger: logger}
}

func (l *logrusLogger) Debug(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

// createClient builds a servicing client from the active viper settings.
func createClient() (servicing.Client, error) {
	debug := viper.GetBool("debug")

	client, err := servicingclient.New(&servicing.Config{
		BaseURL: viper.GetString("api"),
		Token:   viper.GetString("token"),
		Debug:   debug,
		Logger:  newLogrusLogger(debug),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// requireToken fails fast for commands that hit private endpoints.
func requireToken() error {
	if viper.GetString("token") == "" {
		return ErrTokenRequired
	}

	return nil
}

// renderResponse prints a single API object in the selected output format.
func renderResponse(resp *servicing.Response) error {
	if viper.GetString("output") == OutputFormatJSON {
		return renderJSON(resp.Data)
	}

	object, ok := resp.Data.(map[string]any)
	if !ok {
		return renderJSON(resp.Data)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for _, key := range sortedKeys(object) {
		_ = table.Append(key, formatValue(object[key]))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

// renderListResponse prints a list API response as one table row per item,
// with columns drawn from the given keys.
func renderListResponse(resp *servicing.Response, keys ...string) error {
	if viper.GetString("output") == OutputFormatJSON {
		return renderJSON(resp.Data)
	}

	items := resp.List()
	if items == nil {
		return renderResponse(resp)
	}

	if len(items) == 0 {
		fmt.Println("No results found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)

	headers := make([]any, 0, len(keys))
	for _, key := range keys {
		headers = append(headers, key)
	}

	table.Header(headers...)

	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			continue
		}

		row := make([]any, 0, len(keys))
		for _, key := range keys {
			row = append(row, formatValue(object[key]))
		}

		_ = table.Append(row...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func renderJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(object map[string]any) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
