package uploads

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CloudinaryClient relays files to the Cloudinary upload API. It is a plain
// passthrough: no retry, no resumability, no file-type checks.
type CloudinaryClient struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	endpoint   string
	httpClient *http.Client
}

type UploadResult struct {
	URL      string `json:"secure_url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Bytes    int64  `json:"bytes"`
	Format   string `json:"format"`
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret, folder string) *CloudinaryClient {
	if strings.TrimSpace(cloudName) == "" || strings.TrimSpace(apiKey) == "" || strings.TrimSpace(apiSecret) == "" {
		return nil
	}
	return &CloudinaryClient{
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
		endpoint:   fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/auto/upload", cloudName),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CloudinaryClient) Upload(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	if c == nil {
		return nil, errors.New("cloudinary client is nil")
	}
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}

	publicID := uuid.NewString()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Signature: signed params sorted by name, concatenated with the API secret.
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", c.folder, publicID, timestamp, c.apiSecret)
	digest := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(digest[:])

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"signature": signature,
		"folder":    c.folder,
		"public_id": publicID,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cloudinary upload failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
