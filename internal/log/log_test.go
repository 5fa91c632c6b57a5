package log_test

import (
	"bytes"
	"encoding/json"
	stdlog "log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"zahab/internal/domain"
	applog "zahab/internal/log"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	stdlog.SetOutput(&buf)
	t.Cleanup(func() { stdlog.SetOutput(os.Stderr) })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	i := strings.Index(line, "{")
	if i < 0 {
		t.Fatalf("no JSON in log line: %q", line)
	}
	var e map[string]any
	if err := json.Unmarshal([]byte(line[i:]), &e); err != nil {
		t.Fatalf("log line not JSON: %v (%q)", err, line)
	}
	return e
}

func TestAuditCarriesRequestAndAdmin(t *testing.T) {
	buf := capture(t)

	app := fiber.New()
	app.Post("/admin/items", func(c *fiber.Ctx) error {
		c.Locals("user", &domain.AdminUser{Username: "amira", Role: "ADMIN"})
		applog.Audit(c, "admin.items.create", map[string]any{"code": "R100"})
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("POST", "/admin/items", nil)); err != nil {
		t.Fatal(err)
	}

	e := lastEntry(t, buf)
	if e["level"] != "audit" || e["action"] != "admin.items.create" {
		t.Fatalf("entry wrong: %v", e)
	}
	if e["admin"] != "amira" {
		t.Fatalf("admin identity missing: %v", e)
	}
	if e["method"] != "POST" || e["path"] != "/admin/items" {
		t.Fatalf("request enrichment missing: %v", e)
	}
	fields, _ := e["fields"].(map[string]any)
	if fields["code"] != "R100" {
		t.Fatalf("fields not carried: %v", e)
	}
}

func TestErrorWithoutRequest(t *testing.T) {
	buf := capture(t)

	applog.Error(nil, "startup.fail", os.ErrNotExist, nil)

	e := lastEntry(t, buf)
	if e["level"] != "error" || e["action"] != "startup.fail" {
		t.Fatalf("entry wrong: %v", e)
	}
	if _, has := e["path"]; has {
		t.Fatalf("nil ctx must not add request fields: %v", e)
	}
	if e["err"] != os.ErrNotExist.Error() {
		t.Fatalf("err missing: %v", e)
	}
}
