package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/storage"

	"github.com/minio/minio-go/v7"
)

// WriteJSON encodes the run report as indented JSON.
func WriteJSON(w io.Writer, r *reconcile.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatList renders locations one POSIX path per line.
func FormatList(locations []string) []byte {
	var buf bytes.Buffer
	for _, loc := range locations {
		buf.WriteString(toPosix(loc))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteList writes the removed locations to file, replacing any previous list.
func WriteList(file string, locations []string) error {
	if err := os.WriteFile(file, FormatList(locations), 0o644); err != nil {
		return fmt.Errorf("failed to write list file: %w", err)
	}
	return nil
}

// Archive uploads the list and the JSON report under prefix/<timestamp>/.
// It returns the uploaded object names.
func Archive(ctx context.Context, client storage.Client, bucket, prefix string, r *reconcile.RunReport) ([]string, error) {
	dir := path.Join(prefix, r.Started.UTC().Format("20060102T150405Z"))

	var report bytes.Buffer
	if err := WriteJSON(&report, r); err != nil {
		return nil, err
	}

	objects := []struct {
		name        string
		body        []byte
		contentType string
	}{
		{path.Join(dir, "deletable.txt"), FormatList(r.Result.Removed), "text/plain"},
		{path.Join(dir, "report.json"), report.Bytes(), "application/json"},
	}

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		_, err := client.PutObject(ctx, bucket, obj.name, bytes.NewReader(obj.body), int64(len(obj.body)),
			minio.PutObjectOptions{ContentType: obj.contentType})
		if err != nil {
			return names, fmt.Errorf("failed to upload %s: %w", obj.name, err)
		}
		names = append(names, obj.name)
	}
	return names, nil
}

func toPosix(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
