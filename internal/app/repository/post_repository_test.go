package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/db"
)

func setupPostRepoTest(t *testing.T) PostRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewPostRepository(testDB)
}

func TestPostRepository_ToggleLike(t *testing.T) {
	repo := setupPostRepoTest(t)

	post := &model.Post{UserEmail: "author@tastio.io", Caption: "dinner tonight"}
	require.NoError(t, repo.Create(post))

	// First toggle likes
	liked, err := repo.ToggleLike(post.ID, "fan@tastio.io")
	require.NoError(t, err)
	assert.True(t, liked)

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.LikeCount)

	// Second toggle from the same user unlikes instead of double counting
	liked, err = repo.ToggleLike(post.ID, "fan@tastio.io")
	require.NoError(t, err)
	assert.False(t, liked)

	found, err = repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.LikeCount)
}

func TestPostRepository_ToggleLike_DistinctUsers(t *testing.T) {
	repo := setupPostRepoTest(t)

	post := &model.Post{UserEmail: "author@tastio.io", Caption: "best pasta in town"}
	require.NoError(t, repo.Create(post))

	emails := []string{"a@tastio.io", "b@tastio.io", "c@tastio.io"}
	for _, email := range emails {
		liked, err := repo.ToggleLike(post.ID, email)
		require.NoError(t, err)
		assert.True(t, liked)
	}

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, len(emails), found.LikeCount)

	isLiked, err := repo.IsLiked(post.ID, "a@tastio.io")
	require.NoError(t, err)
	assert.True(t, isLiked)

	isLiked, err = repo.IsLiked(post.ID, "stranger@tastio.io")
	require.NoError(t, err)
	assert.False(t, isLiked)
}

func TestPostRepository_List(t *testing.T) {
	repo := setupPostRepoTest(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&model.Post{UserEmail: "author@tastio.io", Caption: "post"}))
	}

	posts, total, err := repo.List(0, 3, "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, posts, 3)

	rest, total, err := repo.List(3, 3, "")
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, rest, 2)
}

func TestPostRepository_List_LikedByMe(t *testing.T) {
	repo := setupPostRepoTest(t)

	first := &model.Post{UserEmail: "author@tastio.io", Caption: "first"}
	second := &model.Post{UserEmail: "author@tastio.io", Caption: "second"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	_, err := repo.ToggleLike(first.ID, "fan@tastio.io")
	require.NoError(t, err)

	posts, _, err := repo.List(0, 10, "fan@tastio.io")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	byID := map[uint]bool{}
	for _, p := range posts {
		byID[p.ID] = p.LikedByMe
	}
	assert.True(t, byID[first.ID])
	assert.False(t, byID[second.ID])

	// Guests never see a liked flag
	posts, _, err = repo.List(0, 10, "")
	require.NoError(t, err)
	for _, p := range posts {
		assert.False(t, p.LikedByMe)
	}
}
