package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tuckertucker/taskboard/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// idGetter lets quiet mode extract the interesting id from a result
type idGetter interface {
	GetID() string
}

// Success outputs a successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		if g, ok := data.(idGetter); ok {
			fmt.Println(g.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Message outputs a short human confirmation (suppressed in quiet mode)
func (f *OutputFormatter) Message(msg string) {
	if f.Quiet {
		return
	}
	if f.JSON {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"message": msg,
		})
		return
	}
	fmt.Println(styles.Success.Render("✓ " + msg))
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]string{
				"code":    code,
				"message": message,
			},
		})
	}

	fmt.Fprintln(os.Stderr, styles.Error.Render("✗ "+message))
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
