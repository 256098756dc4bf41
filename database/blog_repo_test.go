package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableration/site-backend/models"
)

func seedTags(t *testing.T, db *TagRepo, names ...string) []uint {
	t.Helper()

	ids := make([]uint, 0, len(names))
	for _, name := range names {
		tag := models.Tag{Name: name}
		require.NoError(t, db.Add(&tag))
		ids = append(ids, tag.ID)
	}
	return ids
}

func TestUniqueSlugSuffixing(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)

	got, err := repo.UniqueSlug("sample-blog-title", 0)
	require.NoError(t, err)
	assert.Equal(t, "sample-blog-title", got)

	require.NoError(t, repo.Create(&models.Blog{Title: "Sample", Slug: "sample-blog-title"}, nil, nil))

	got, err = repo.UniqueSlug("sample-blog-title", 0)
	require.NoError(t, err)
	assert.Equal(t, "sample-blog-title-1", got)

	require.NoError(t, repo.Create(&models.Blog{Title: "Sample", Slug: "sample-blog-title-1"}, nil, nil))

	got, err = repo.UniqueSlug("sample-blog-title", 0)
	require.NoError(t, err)
	assert.Equal(t, "sample-blog-title-2", got)
}

func TestUniqueSlugExcludesOwnRow(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)

	blog := models.Blog{Title: "Sample", Slug: "sample"}
	require.NoError(t, repo.Create(&blog, nil, nil))

	// Updating the same row must be allowed to keep its own slug.
	got, err := repo.UniqueSlug("sample", blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "sample", got)
}

func TestCreateWithSlugRetryOnConflict(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)

	require.NoError(t, repo.Create(&models.Blog{Title: "First", Slug: "taken"}, nil, nil))

	// Simulates a writer that lost the check-then-act race: the pre-checked
	// slug is already committed, so the unique index fires and the write
	// retries with the next suffix.
	second := models.Blog{Title: "Second", Slug: "taken"}
	require.NoError(t, repo.Create(&second, nil, nil))
	assert.Equal(t, "taken-1", second.Slug)
}

func TestTagInputIsDeduplicated(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)
	tagIDs := seedTags(t, NewTagRepo(db), "go", "sqlite", "cms")

	blog := models.Blog{Title: "Tagged", Slug: "tagged"}
	duplicated := []uint{tagIDs[0], tagIDs[1], tagIDs[1], tagIDs[2]}
	require.NoError(t, repo.Create(&blog, duplicated, nil))

	var count int64
	require.NoError(t, db.Model(&models.BlogTag{}).Where("blog_id = ?", blog.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	tags, err := repo.TagsFor(blog.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 3)
}

func TestUpdateReplacesTagsWholesale(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)
	tagIDs := seedTags(t, NewTagRepo(db), "go", "sqlite", "cms")

	blog := models.Blog{Title: "Tagged", Slug: "tagged"}
	require.NoError(t, repo.Create(&blog, tagIDs, nil))

	require.NoError(t, repo.Update(&blog, tagIDs[:1], nil))

	tags, err := repo.TagsFor(blog.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Name)
}

func TestDeleteBlogCascadesLinksButKeepsTags(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)
	tagRepo := NewTagRepo(db)
	tagIDs := seedTags(t, tagRepo, "go", "sqlite")

	blog := models.Blog{Title: "Doomed", Slug: "doomed"}
	require.NoError(t, repo.Create(&blog, tagIDs, nil))

	require.NoError(t, repo.Delete(blog.ID))

	var linkCount int64
	require.NoError(t, db.Model(&models.BlogTag{}).Where("blog_id = ?", blog.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	tags, err := tagRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestDeleteTagCascadesLinksButKeepsBlog(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)
	tagRepo := NewTagRepo(db)
	tagIDs := seedTags(t, tagRepo, "go")

	blog := models.Blog{Title: "Survivor", Slug: "survivor"}
	require.NoError(t, repo.Create(&blog, tagIDs, nil))

	require.NoError(t, tagRepo.Delete(tagIDs[0]))

	tags, err := repo.TagsFor(blog.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	kept, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestReferencesResolveOnlyPublished(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)

	published := models.Blog{Title: "Published", Slug: "published", Published: true}
	require.NoError(t, repo.Create(&published, nil, nil))
	draft := models.Blog{Title: "Draft", Slug: "draft", Published: false}
	require.NoError(t, repo.Create(&draft, nil, nil))

	citing := models.Blog{Title: "Citing", Slug: "citing"}
	require.NoError(t, repo.Create(&citing, nil, []uint{draft.ID, published.ID}))

	refs, err := repo.References(citing.ID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "published", refs[0].Slug)
}

func TestFindByIDAndBySlugAgree(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)

	blog := models.Blog{Title: "Lookup", Slug: "lookup", Content: "body"}
	require.NoError(t, repo.Create(&blog, nil, nil))

	byID, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)

	bySlug, err := repo.FindBySlug("lookup")
	require.NoError(t, err)
	require.NotNil(t, bySlug)

	assert.Equal(t, byID.ID, bySlug.ID)
	assert.Equal(t, byID.Title, bySlug.Title)
	assert.Equal(t, byID.Content, bySlug.Content)
	assert.Equal(t, byID.Slug, bySlug.Slug)
}

func TestDeletingLogoNullsBlogReference(t *testing.T) {
	db := newMigratedTestDB(t)
	repo := NewBlogRepo(db)
	logoRepo := NewLogoRepo(db)

	logo := models.Logo{Name: "Partner"}
	require.NoError(t, logoRepo.Add(&logo))

	blog := models.Blog{Title: "Branded", Slug: "branded", LogoID: &logo.ID}
	require.NoError(t, repo.Create(&blog, nil, nil))

	require.NoError(t, logoRepo.Delete(logo.ID))

	reloaded, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Nil(t, reloaded.LogoID)
}
