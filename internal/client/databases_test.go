package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appwrite/starter-for-vue/pkg/id"
	"github.com/appwrite/starter-for-vue/pkg/permission"
	"github.com/appwrite/starter-for-vue/pkg/query"
	"github.com/appwrite/starter-for-vue/pkg/role"
)

const docsPath = "/databases/main/collections/todos/documents"

func TestDatabases_ListDocumentsSendsQueries(t *testing.T) {
	var gotQueries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, docsPath, r.URL.Path)
		gotQueries = r.URL.Query()["queries[]"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":1,"documents":[{"$id":"d1","$collectionId":"todos","$databaseId":"main","$permissions":["read(\"any\")"],"title":"Write tests","done":false}]}`))
	}))
	defer srv.Close()

	queries := []string{query.Equal("done", false), query.Limit(10)}
	list, err := NewDatabases(NewClient(srv.URL, "p")).ListDocuments(context.Background(), "main", "todos", queries)
	require.NoError(t, err)

	assert.Equal(t, queries, gotQueries)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Documents, 1)

	doc := list.Documents[0]
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, "todos", doc.CollectionID)
	assert.Equal(t, "main", doc.DatabaseID)
	assert.Equal(t, []string{`read("any")`}, doc.Permissions)
	assert.Equal(t, "Write tests", doc.Data["title"])
	assert.Equal(t, false, doc.Data["done"])
	_, hasSystem := doc.Data["$id"]
	assert.False(t, hasSystem)
}

func TestDatabases_CRUD(t *testing.T) {
	srv, seen := fakeAppwrite(t, map[string]string{
		"POST " + docsPath:          `{"$id":"d1","title":"New","done":false}`,
		"GET " + docsPath + "/d1":   `{"$id":"d1","title":"New","done":false}`,
		"PATCH " + docsPath + "/d1": `{"$id":"d1","title":"New","done":true}`,
		"DELETE " + docsPath + "/d1": "",
	})
	db := NewDatabases(NewClient(srv.URL, "p"))
	ctx := context.Background()

	perms := []string{permission.Read(role.Any()), permission.Update(role.User("u1"))}
	created, err := db.CreateDocument(ctx, "main", "todos", id.Unique(), map[string]any{"title": "New", "done": false}, perms)
	require.NoError(t, err)
	assert.Equal(t, "d1", created.ID)

	got, err := db.GetDocument(ctx, "main", "todos", "d1", nil)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Data["title"])

	updated, err := db.UpdateDocument(ctx, "main", "todos", "d1", map[string]any{"done": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, true, updated.Data["done"])

	require.NoError(t, db.DeleteDocument(ctx, "main", "todos", "d1"))

	require.Len(t, *seen, 4)
	createBody := (*seen)[0].Body
	assert.Equal(t, "unique()", createBody["documentId"])
	assert.Equal(t, map[string]any{"title": "New", "done": false}, createBody["data"])
	assert.Equal(t, []any{`read("any")`, `update("user:u1")`}, createBody["permissions"])

	updateBody := (*seen)[2].Body
	assert.Equal(t, map[string]any{"done": true}, updateBody["data"])
	_, hasPerms := updateBody["permissions"]
	assert.False(t, hasPerms, "nil permissions are left unchanged")
}

func TestDatabases_EscapesIDs(t *testing.T) {
	srv, seen := fakeAppwrite(t, map[string]string{})
	_, err := NewDatabases(NewClient(srv.URL, "p")).GetDocument(context.Background(), "main", "todos", "a/b", nil)

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	require.Len(t, *seen, 1)
	assert.Equal(t, docsPath+"/a%2Fb", (*seen)[0].Path)
}

func TestDatabases_RejectsMissingIDs(t *testing.T) {
	db := NewDatabases(NewClient("http://unused.invalid", "p"))
	ctx := context.Background()

	_, err := db.ListDocuments(ctx, "", "todos", nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = db.ListDocuments(ctx, "main", "", nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = db.GetDocument(ctx, "main", "todos", "", nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = db.CreateDocument(ctx, "main", "todos", "", map[string]any{}, nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = db.CreateDocument(ctx, "main", "todos", "d", nil, nil)
	assert.ErrorIs(t, err, ErrMissingParameter)

	assert.ErrorIs(t, db.DeleteDocument(ctx, "main", "todos", ""), ErrMissingParameter)
}

func TestDocument_Decode(t *testing.T) {
	srv, _ := fakeAppwrite(t, map[string]string{
		"GET " + docsPath + "/d1": `{"$id":"d1","$createdAt":"2026-01-01T00:00:00.000+00:00","title":"Typed","priority":3}`,
	})

	doc, err := NewDatabases(NewClient(srv.URL, "p")).GetDocument(context.Background(), "main", "todos", "d1", nil)
	require.NoError(t, err)

	var todo struct {
		ID        string `json:"$id"`
		CreatedAt string `json:"$createdAt"`
		Title     string `json:"title"`
		Priority  int    `json:"priority"`
	}
	require.NoError(t, doc.Decode(&todo))
	assert.Equal(t, "d1", todo.ID)
	assert.Equal(t, "2026-01-01T00:00:00.000+00:00", todo.CreatedAt)
	assert.Equal(t, "Typed", todo.Title)
	assert.Equal(t, 3, todo.Priority)
}
