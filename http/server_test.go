package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docparse"
	dochttp "github.com/fwojciec/docparse/http"
	"github.com/fwojciec/docparse/mock"
)

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := dochttp.NewServer()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts text", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		s.Parser = &mock.Parser{
			ParseFn: func(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
				assert.Equal(t, "Hello world.", text)
				assert.Equal(t, "text", opts.SourceType)
				return &docparse.Document{
					DocumentType: docparse.DocumentType,
					ContentBlocks: []*docparse.Block{
						{Type: docparse.BlockParagraph, Content: text},
					},
				}, nil
			},
		}

		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"text": "Hello world."}`)
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert", body))

		require.Equal(t, http.StatusOK, rec.Code)
		var doc docparse.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, docparse.DocumentType, doc.DocumentType)
		require.Len(t, doc.ContentBlocks, 1)
		assert.Equal(t, "Hello world.", doc.ContentBlocks[0].Content)
	})

	t.Run("converts html through extraction pipeline", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		s.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*docparse.ExtractResult, error) {
				return &docparse.ExtractResult{Title: "Guide", ContentHTML: "<p>Hi</p>"}, nil
			},
		}
		s.Markdown = &mock.MarkdownConverter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<p>Hi</p>", html)
				return "Hi", nil
			},
		}
		s.Parser = &mock.Parser{
			ParseFn: func(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
				assert.Equal(t, "Hi", text)
				assert.Equal(t, "html", opts.SourceType)
				return &docparse.Document{}, nil
			},
		}

		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"html": "<html><body><p>Hi</p></body></html>"}`)
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert", body))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("maps EINVALID to 400", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		s.Parser = &mock.Parser{
			ParseFn: func(text string, opts docparse.ParseOptions) (*docparse.Document, error) {
				return nil, docparse.Errorf(docparse.EINVALID, "document text required")
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{"text": ""}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"document text required"}`, rec.Body.String())
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(`{not json`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Conversions(t *testing.T) {
	t.Parallel()

	t.Run("lists conversions with source path filter", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		s.Conversions = &mock.ConversionService{
			FindConversionsFn: func(ctx context.Context, filter docparse.ConversionFilter) ([]*docparse.Conversion, error) {
				require.NotNil(t, filter.SourcePath)
				assert.Equal(t, "/data/a.txt", *filter.SourcePath)
				return []*docparse.Conversion{
					{ID: "abc", SourcePath: "/data/a.txt", Result: &docparse.Document{}},
				}, nil
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conversions?source_path=%2Fdata%2Fa.txt", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("returns conversion by id", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		s.Conversions = &mock.ConversionService{
			FindConversionByIDFn: func(ctx context.Context, id string) (*docparse.Conversion, error) {
				assert.Equal(t, "abc", id)
				return &docparse.Conversion{ID: "abc", SourcePath: "/data/a.txt", Result: &docparse.Document{}}, nil
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conversions/abc", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var conv docparse.Conversion
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))
		assert.Equal(t, "abc", conv.ID)
	})

	t.Run("maps ENOTFOUND to 404", func(t *testing.T) {
		t.Parallel()

		s := dochttp.NewServer()
		s.Conversions = &mock.ConversionService{
			FindConversionByIDFn: func(ctx context.Context, id string) (*docparse.Conversion, error) {
				return nil, docparse.Errorf(docparse.ENOTFOUND, "conversion not found")
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/conversions/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deletes conversion", func(t *testing.T) {
		t.Parallel()

		var deleted string
		s := dochttp.NewServer()
		s.Conversions = &mock.ConversionService{
			DeleteConversionFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/conversions/abc", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "abc", deleted)
	})
}

func TestServer_OpenClose(t *testing.T) {
	t.Parallel()

	s := dochttp.NewServer()
	s.Addr = "127.0.0.1:0"
	require.NoError(t, s.Open())
	defer func() { _ = s.Close() }()

	resp, err := http.Get(s.URL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
