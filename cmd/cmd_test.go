package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const draft = `<!doctype html>
<html lang="de"><head><title>Draft</title></head>
<body>
  <div class="toolbar"><button>B</button></div>
  <div id="editor" contenteditable="true"><h1>Plan</h1><p>Ship <b>it</b> &lt;now&gt;</p><ol><li>a</li><li>b</li></ol></div>
</body></html>`

// run executes the command tree with a config path that does not exist,
// so every test starts from the defaults.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertMarkdownToStdout(t *testing.T) {
	out, _, err := run(t, draft, "convert", "-", "--markdown", "--stdout")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	want := "# Plan\n\nShip **it** &lt;now&gt;\n\n1. a\n2. b\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestConvertHTMLToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "draft.html")
	if err := os.WriteFile(src, []byte(draft), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	out, _, err := run(t, "", "convert", src, "--html", "--output_dir", outDir)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "Written") {
		t.Errorf("expected confirmation, got %q", out)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "draft.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)
	for _, want := range []string{"<h1>Plan</h1>", "<strong>it</strong>", "&lt;now&gt;", "<ol>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<button") {
		t.Errorf("editor chrome leaked into output:\n%s", html)
	}
}

func TestConvertJSONMetadata(t *testing.T) {
	out, _, err := run(t, draft, "convert", "-", "--json", "--stdout")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	for _, want := range []string{`"title": "Draft"`, `"language": "de"`, `"source": "stdin"`, `"engine": "editor"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}

func TestConvertRejectsMultipleFormats(t *testing.T) {
	_, _, err := run(t, draft, "convert", "-", "--markdown", "--html", "--stdout")
	if err == nil || !strings.Contains(err.Error(), "only one output format") {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestConvertRejectsUnknownEngine(t *testing.T) {
	_, _, err := run(t, draft, "convert", "-", "--engine", "pandoc", "--stdout")
	if err == nil {
		t.Error("expected engine error")
	}
}

func TestConvertCommonMarkEngine(t *testing.T) {
	out, _, err := run(t, draft, "convert", "-", "--engine", "commonmark", "--stdout")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "# Plan") || !strings.Contains(out, "**it**") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckURL(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr string
	}{
		{name: "scheme-less", args: []string{"example.com"}, wantOut: "https://example.com"},
		{name: "https", args: []string{"https://example.com"}, wantOut: "https://example.com"},
		{name: "http", args: []string{"http://example.com"}, wantErr: "httpsRequired"},
		{name: "javascript", args: []string{"javascript:alert(1)"}, wantErr: "invalidProtocol"},
		{name: "empty", args: []string{""}, wantOut: "removed"},
		{name: "good width", args: []string{"x.org/a.png", "--width", "50%"}, wantOut: "width 50%"},
		{name: "bad width", args: []string{"x.org/a.png", "--width", "huge"}, wantOut: "ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", append([]string{"check-url"}, tt.args...)...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output = %q, want it to contain %q", out, tt.wantOut)
			}
		})
	}
}

func TestCheckURLUsesConfiguredMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editmark.yaml")
	if err := os.WriteFile(path, []byte("messages:\n  httpsRequired: \"secure links only\"\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "check-url", "http://a.b"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "secure links only") {
		t.Errorf("error = %v, want configured message", err)
	}
}

func TestEscape(t *testing.T) {
	out, _, err := run(t, "", "escape", "<a href='x'>", "&")
	if err != nil {
		t.Fatalf("escape failed: %v", err)
	}
	if out != "&lt;a href=&#039;x&#039;&gt; &amp;\n" {
		t.Errorf("output = %q", out)
	}
}

const formDraft = `<html><body>
<form action="/save">
  <div class="toolbar"><button>B</button></div>
  <div contenteditable="true"><p>typed text</p></div>
  <button>Save</button>
</form>
</body></html>`

func TestConvertEditorInsideForm(t *testing.T) {
	out, errOut, err := run(t, formDraft, "convert", "-", "--markdown", "--stdout")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if out != "typed text\n" {
		t.Errorf("output = %q, want %q", out, "typed text\n")
	}
	if strings.Contains(errOut, "empty") {
		t.Errorf("unexpected empty-region warning: %q", errOut)
	}
}

func TestConvertWarnsOnEmptyRegion(t *testing.T) {
	page := `<html><body><div contenteditable="true"><p>  </p></div></body></html>`

	_, errOut, err := run(t, page, "convert", "-", "--markdown", "--stdout")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(errOut, "editable region is empty") {
		t.Errorf("stderr = %q, want empty-region warning", errOut)
	}

	_, errOut, err = run(t, page, "--quiet", "convert", "-", "--markdown", "--stdout")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if errOut != "" {
		t.Errorf("stderr = %q, want nothing with --quiet", errOut)
	}
}

func TestConvertExpandsOutputDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, _, err := run(t, draft, "convert", "-", "--markdown", "--output_dir", "~/exports")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	want := filepath.Join(home, "exports", "document.md")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected %s to exist (output %q): %v", want, out, err)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editmark.yaml")

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(data), "engine: editor") {
		t.Errorf("config missing defaults:\n%s", data)
	}

	root = NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init error = %v, want already exists", err)
	}

	root = NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "init", "--force"})
	if err := root.Execute(); err != nil {
		t.Errorf("forced init failed: %v", err)
	}
}
