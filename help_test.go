package runperf

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

var testResult = &Result{
	Command:    "echo hi",
	Iterations: 3,
	Data: ResultData{
		Real: Summary{Mean: 100, PStdev: 0},
		User: Summary{Mean: 50, PStdev: 1},
		Sys:  Summary{Mean: 20, PStdev: 2},
	},
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testResult, "json"); err != nil {
		t.Fatal(err)
	}
	want := `{
  "command": "echo hi",
  "iterations": 3,
  "data": {
    "real": {
      "mean": 100,
      "pstdev": 0
    },
    "user": {
      "mean": 50,
      "pstdev": 1
    },
    "sys": {
      "mean": 20,
      "pstdev": 2
    }
  }
}
`
	if buf.String() != want {
		t.Fatalf("Encode json =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeJSONKeepsShellCharacters(t *testing.T) {
	res := *testResult
	res.Command = "make && ./bench > /tmp/x < in"
	var buf bytes.Buffer
	if err := Encode(&buf, &res, "json"); err != nil {
		t.Fatal(err)
	}
	want := `"command": "make && ./bench > /tmp/x < in",`
	if !strings.Contains(buf.String(), want) {
		t.Fatalf("Encode json =\n%s\nwant line %s", buf.String(), want)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testResult, "yaml"); err != nil {
		t.Fatal(err)
	}
	var got Result
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if got != *testResult {
		t.Fatalf("yaml round trip = %+v, want %+v", got, *testResult)
	}
	if !strings.HasPrefix(buf.String(), "command: echo hi\n") {
		t.Fatalf("yaml output starts with %q", buf.String())
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, testResult, "xml"); err == nil {
		t.Fatal("want error for unknown format")
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.json")
	err := WriteFile(name, func(w io.Writer) error {
		return Encode(w, testResult, "json")
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"command": "echo hi"`)) {
		t.Fatalf("file content %s", data)
	}

	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "x"), func(io.Writer) error { return nil }); err == nil {
		t.Fatal("want error for missing directory")
	}
}
