package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/docparse"
	"github.com/fwojciec/docparse/sqlite"
)

// testDocument returns a small but complete document result.
func testDocument(title string) *docparse.Document {
	return &docparse.Document{
		DocumentType: docparse.DocumentType,
		Metadata: docparse.DocumentMetadata{
			Title:      title,
			WordCount:  3,
			BlockCount: 1,
			ContentTypes: map[string]int{
				"paragraph": 1,
			},
			Language: "en",
		},
		ContentBlocks: []*docparse.Block{
			{Type: docparse.BlockParagraph, Content: "Some content here."},
		},
		Summary:              "Beginning: Some content here.",
		Version:              docparse.Version,
		NormalizationApplied: true,
	}
}

func TestConversionService_CreateConversion(t *testing.T) {
	t.Parallel()

	t.Run("creates conversion with generated fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)
		ctx := context.Background()

		conv := &docparse.Conversion{
			SourcePath: "/data/docs/guide.txt",
			SourceType: "text",
			Title:      "Guide",
			Result:     testDocument("Guide"),
		}

		err := svc.CreateConversion(ctx, conv)
		require.NoError(t, err)

		assert.NotEmpty(t, conv.ID, "ID should be generated")
		assert.NotEmpty(t, conv.ContentHash, "ContentHash should be generated")
		assert.False(t, conv.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid conversion", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)

		conv := &docparse.Conversion{} // missing required fields

		err := svc.CreateConversion(context.Background(), conv)
		require.Error(t, err)
		assert.Equal(t, docparse.EINVALID, docparse.ErrorCode(err))
	})
}

func TestConversionService_FindConversionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns conversion when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)
		ctx := context.Background()

		conv := &docparse.Conversion{
			SourcePath: "/data/docs/guide.txt",
			SourceType: "text",
			Title:      "Guide",
			Result:     testDocument("Guide"),
		}
		require.NoError(t, svc.CreateConversion(ctx, conv))

		found, err := svc.FindConversionByID(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, found.ID)
		assert.Equal(t, conv.SourcePath, found.SourcePath)
		assert.Equal(t, conv.SourceType, found.SourceType)
		assert.Equal(t, conv.Title, found.Title)
		assert.Equal(t, conv.ContentHash, found.ContentHash)

		require.NotNil(t, found.Result)
		assert.Equal(t, "Guide", found.Result.Metadata.Title)
		require.Len(t, found.Result.ContentBlocks, 1)
		assert.Equal(t, docparse.BlockParagraph, found.Result.ContentBlocks[0].Type)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)

		_, err := svc.FindConversionByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, docparse.ENOTFOUND, docparse.ErrorCode(err))
	})
}

func TestConversionService_FindConversions(t *testing.T) {
	t.Parallel()

	t.Run("filters by source path", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)
		ctx := context.Background()

		for _, path := range []string{"/data/a.txt", "/data/b.txt", "/data/a.txt"} {
			conv := &docparse.Conversion{
				SourcePath: path,
				Result:     testDocument(path),
			}
			require.NoError(t, svc.CreateConversion(ctx, conv))
		}

		path := "/data/a.txt"
		convs, err := svc.FindConversions(ctx, docparse.ConversionFilter{SourcePath: &path})
		require.NoError(t, err)
		require.Len(t, convs, 2)
		for _, conv := range convs {
			assert.Equal(t, path, conv.SourcePath)
		}
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)
		ctx := context.Background()

		for range 5 {
			conv := &docparse.Conversion{
				SourcePath: "/data/doc.txt",
				Result:     testDocument("doc"),
			}
			require.NoError(t, svc.CreateConversion(ctx, conv))
		}

		convs, err := svc.FindConversions(ctx, docparse.ConversionFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, convs, 2)
	})

	t.Run("returns empty result without error", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)

		convs, err := svc.FindConversions(context.Background(), docparse.ConversionFilter{})
		require.NoError(t, err)
		assert.Empty(t, convs)
	})
}

func TestConversionService_DeleteConversion(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing conversion", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)
		ctx := context.Background()

		conv := &docparse.Conversion{
			SourcePath: "/data/docs/guide.txt",
			Result:     testDocument("Guide"),
		}
		require.NoError(t, svc.CreateConversion(ctx, conv))

		require.NoError(t, svc.DeleteConversion(ctx, conv.ID))

		_, err := svc.FindConversionByID(ctx, conv.ID)
		require.Error(t, err)
		assert.Equal(t, docparse.ENOTFOUND, docparse.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing conversion", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConversionService(db)

		err := svc.DeleteConversion(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, docparse.ENOTFOUND, docparse.ErrorCode(err))
	})
}
