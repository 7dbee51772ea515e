package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ReceiptStore keeps uploaded payment receipts. Payment itself is an
// out-of-band bank transfer; the receipt is the only artifact this
// service ever sees.
type ReceiptStore interface {
	Save(ctx context.Context, sessionID, filename string, content io.Reader) (string, error)
}

type fileReceiptStore struct {
	root string
}

func NewReceiptStore(storagePath string) (ReceiptStore, error) {
	root := filepath.Join(storagePath, "receipts")

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory: %w", err)
	}

	return &fileReceiptStore{root: root}, nil
}

func (s *fileReceiptStore) Save(ctx context.Context, sessionID, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Only the extension of the client filename is trusted.
	ext := strings.ToLower(filepath.Ext(filename))

	name := fmt.Sprintf("%s-%s%s", sessionID, uuid.NewString(), ext)
	path := filepath.Join(s.root, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)

		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	return filepath.Join("receipts", name), nil
}
