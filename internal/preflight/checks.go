package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/sys/unix"

	"recetin/internal/deps"
	"recetin/internal/store"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDatabase opens the recipe database, verifies the schema, and counts documents.
// A missing database file passes: it is created on first write.
func CheckDatabase(ctx context.Context, path string) Result {
	const name = "Database"

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not created yet)", path)}
	}

	st, err := store.OpenPath(path)
	if err != nil {
		if errors.Is(err, store.ErrSchemaMismatch) {
			return Result{Name: name, Detail: "schema version mismatch (export recipes and delete the database)"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("open failed (%v)", err)}
	}
	defer st.Close()

	count, err := st.Count(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("query failed (%v)", err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d recipes)", path, count)}
}

// ResolveEditor returns the editor command from $VISUAL or $EDITOR, falling
// back to vi.
func ResolveEditor() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return "vi"
}

// CheckEditor verifies the configured editor binary is on PATH.
func CheckEditor() Result {
	const name = "Editor"

	editor := ResolveEditor()
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return Result{Name: name, Detail: "no editor configured (set $EDITOR)"}
	}
	status := deps.CheckBinaries([]deps.Requirement{{Name: "editor", Command: fields[0]}})[0]
	if !status.Available {
		return Result{Name: name, Detail: fmt.Sprintf("%s not found (set $EDITOR)", fields[0])}
	}
	return Result{Name: name, Passed: true, Detail: status.Path}
}

// CheckClipboard reports whether a clipboard helper is available. A missing
// helper only disables --clipboard, so the check passes either way.
func CheckClipboard() Result {
	const name = "Clipboard"
	if clipboard.Unsupported {
		return Result{Name: name, Passed: true, Detail: "Unavailable (install xclip, xsel or wl-clipboard)"}
	}
	if helper, ok := deps.FirstAvailable(deps.ClipboardHelpers()); ok {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("Available (%s)", helper.Name)}
	}
	return Result{Name: name, Passed: true, Detail: "Available"}
}

// CheckNtfy verifies the ntfy server behind topic answers its health endpoint.
func CheckNtfy(ctx context.Context, topic string) Result {
	const name = "Notifications"

	parsed, err := url.Parse(strings.TrimSpace(topic))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Result{Name: name, Detail: fmt.Sprintf("invalid topic url %q", topic)}
	}
	health := url.URL{Scheme: parsed.Scheme, Host: parsed.Host, Path: "/v1/health"}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, health.String(), nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("health check failed (%v)", err)}
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("health check failed (%v)", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Name: name, Detail: fmt.Sprintf("health check failed (%d)", resp.StatusCode)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s reachable", parsed.Host)}
}
