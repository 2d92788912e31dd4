package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/filestorage"
)

type postServiceFixture struct {
	users    *fakeUserRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
	svc      PostService
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()
	users := newFakeUserRepo()
	posts := newFakePostRepo(users, newFakeFollowRepo())
	comments := newFakeCommentRepo()
	posts.comments = comments

	storage, err := filestorage.NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	return &postServiceFixture{
		users:    users,
		posts:    posts,
		comments: comments,
		svc:      NewPostService(posts, comments, users, storage),
	}
}

func TestPostCreate(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")

	post, err := f.svc.Create(context.Background(), author.ID, PostInput{Text: "first"})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, author.ID, post.AuthorID)

	stored, err := f.posts.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Text)
}

func TestPostUpdateByAuthor(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	post := f.posts.add(author.ID, "before")

	updated, err := f.svc.Update(context.Background(), author.ID, "leo", post.ID, PostInput{Text: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)

	stored, err := f.posts.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", stored.Text)
}

func TestPostUpdateByNonAuthor(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	other := f.users.add("intruder")
	post := f.posts.add(author.ID, "before")

	_, err := f.svc.Update(context.Background(), other.ID, "leo", post.ID, PostInput{Text: "after"})
	assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)

	stored, err := f.posts.GetByID(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "before", stored.Text)
}

func TestPostMismatchedAuthorPairIsNotFound(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	f.users.add("other")
	post := f.posts.add(author.ID, "text")

	_, err := f.svc.Update(context.Background(), author.ID, "other", post.ID, PostInput{Text: "x"})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)

	_, _, _, err = f.svc.Detail(context.Background(), "other", post.ID, 0)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestPostDeleteByAuthor(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	reader := f.users.add("reader")
	post := f.posts.add(author.ID, "text")
	_, err := f.comments.Create(context.Background(), &models.Comment{
		PostID: post.ID, AuthorID: reader.ID, Text: "soon gone",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), author.ID, "leo", post.ID))

	_, err = f.posts.GetByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)

	comments, err := f.comments.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostDeleteByNonAuthor(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	other := f.users.add("intruder")
	post := f.posts.add(author.ID, "text")

	err := f.svc.Delete(context.Background(), other.ID, "leo", post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)

	_, err = f.posts.GetByID(context.Background(), post.ID)
	assert.NoError(t, err)
}

func uploadHeader(t *testing.T, filename string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

type failingUpdateRepo struct {
	*fakePostRepo
}

func (r *failingUpdateRepo) Update(ctx context.Context, post *models.Post) error {
	return errors.New("update failed")
}

func TestPostUpdateFailureRemovesSavedImage(t *testing.T) {
	users := newFakeUserRepo()
	posts := newFakePostRepo(users, newFakeFollowRepo())
	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir, "/media")
	require.NoError(t, err)
	svc := NewPostService(&failingUpdateRepo{posts}, newFakeCommentRepo(), users, storage)

	author := users.add("leo")
	post := posts.add(author.ID, "text")

	_, err = svc.Update(context.Background(), author.ID, "leo", post.ID, PostInput{
		Text:  "after",
		Image: uploadHeader(t, "cat.png", []byte("payload")),
	})
	require.Error(t, err)

	// The replacement image must not linger on disk once the row kept
	// the old one.
	entries, err := os.ReadDir(filepath.Join(dir, "posts"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPostDetail(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	reader := f.users.add("reader")
	post := f.posts.add(author.ID, "text")

	for _, text := range []string{"first", "second"} {
		_, err := f.comments.Create(context.Background(), &models.Comment{
			PostID: post.ID, AuthorID: reader.ID, Text: text,
		})
		require.NoError(t, err)
	}

	got, comments, profile, err := f.svc.Detail(context.Background(), "leo", post.ID, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, "leo", profile.Username)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)
	assert.Equal(t, "first", comments[1].Text)
}

func TestGetForEdit(t *testing.T) {
	f := newPostServiceFixture(t)
	author := f.users.add("leo")
	other := f.users.add("intruder")
	post := f.posts.add(author.ID, "text")

	got, err := f.svc.GetForEdit(context.Background(), author.ID, "leo", post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = f.svc.GetForEdit(context.Background(), other.ID, "leo", post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)
}
