package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"PGRegistry/config"
	"PGRegistry/db"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const inlineImageMarker = "data:image"

// IsInlineImage reports whether value is an inline image data-URL.
func IsInlineImage(value string) bool {
	return strings.HasPrefix(value, inlineImageMarker)
}

/*
Preview reads a user-selected file into an inline data-URL the client
can render immediately. The caller is responsible for having checked
MIME type and size beforehand.
*/
func Preview(file io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

/*
Upload writes the binary to the blob store under a random unique
filename preserving the original extension and returns the public
download URL for it.
*/
func Upload(ctx context.Context, data []byte, contentType string, originalName string, prefix string) (string, error) {
	name := prefix + "/" + uuid.NewString() + filepath.Ext(originalName)
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	stream, err := db.Bucket().OpenUploadStream(name, opts)
	if err != nil {
		return "", fmt.Errorf("failed to open upload stream: %w", err)
	}
	if _, err := stream.Write(data); err != nil {
		stream.Close()
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize blob: %w", err)
	}
	return config.Cfg.PublicBaseUrl + "/files/" + name, nil
}

// Download fetches a stored blob and its content type by name.
func Download(ctx context.Context, name string) ([]byte, string, error) {
	var buf bytes.Buffer
	if _, err := db.Bucket().DownloadToStreamByName(name, &buf); err != nil {
		return nil, "", err
	}

	contentType := "application/octet-stream"
	var fileDoc struct {
		Metadata struct {
			ContentType string `bson:"contentType"`
		} `bson:"metadata"`
	}
	err := db.Bucket().GetFilesCollection().FindOne(ctx, bson.M{"filename": name}).Decode(&fileDoc)
	if err == nil && fileDoc.Metadata.ContentType != "" {
		contentType = fileDoc.Metadata.ContentType
	}
	return buf.Bytes(), contentType, nil
}

/*
DecodeDataURL splits an inline image data-URL into its binary payload
and MIME type.
*/
func DecodeDataURL(value string) ([]byte, string, error) {
	if !IsInlineImage(value) {
		return nil, "", errors.New("not an inline image data-URL")
	}
	rest := strings.TrimPrefix(value, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", errors.New("malformed data-URL: missing base64 payload")
	}
	contentType := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return nil, "", fmt.Errorf("malformed data-URL payload: %w", err)
	}
	return data, contentType, nil
}
