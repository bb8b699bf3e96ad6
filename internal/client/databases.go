package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/appwrite/starter-for-vue/pkg/models"
)

// Databases exposes document operations of the Databases API.
type Databases struct {
	client *Client
}

func NewDatabases(c *Client) *Databases {
	return &Databases{client: c}
}

// Client returns the shared client this service wraps.
func (d *Databases) Client() *Client {
	return d.client
}

func documentsPath(databaseID, collectionID string) (string, error) {
	if databaseID == "" {
		return "", missing("databaseId")
	}
	if collectionID == "" {
		return "", missing("collectionId")
	}
	return "/databases/" + url.PathEscape(databaseID) + "/collections/" + url.PathEscape(collectionID) + "/documents", nil
}

func documentPath(databaseID, collectionID, documentID string) (string, error) {
	base, err := documentsPath(databaseID, collectionID)
	if err != nil {
		return "", err
	}
	if documentID == "" {
		return "", missing("documentId")
	}
	return base + "/" + url.PathEscape(documentID), nil
}

func queryParams(queries []string) url.Values {
	if len(queries) == 0 {
		return nil
	}
	return url.Values{"queries[]": queries}
}

// ListDocuments lists documents in a collection. queries are built with the
// query package.
func (d *Databases) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*models.DocumentList, error) {
	path, err := documentsPath(databaseID, collectionID)
	if err != nil {
		return nil, err
	}
	out := &models.DocumentList{}
	if err := d.client.call(ctx, "databases.listDocuments", http.MethodGet, path, queryParams(queries), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Databases) GetDocument(ctx context.Context, databaseID, collectionID, documentID string, queries []string) (*models.Document, error) {
	path, err := documentPath(databaseID, collectionID, documentID)
	if err != nil {
		return nil, err
	}
	out := &models.Document{}
	if err := d.client.call(ctx, "databases.getDocument", http.MethodGet, path, queryParams(queries), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDocument stores data as a new document. data is any JSON-encodable
// value. Permissions are built with the permission package; nil inherits the
// collection's permissions.
func (d *Databases) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any, permissions []string) (*models.Document, error) {
	path, err := documentsPath(databaseID, collectionID)
	if err != nil {
		return nil, err
	}
	if documentID == "" {
		return nil, missing("documentId")
	}
	if data == nil {
		return nil, missing("data")
	}
	body := map[string]any{
		"documentId": documentID,
		"data":       data,
	}
	if permissions != nil {
		body["permissions"] = permissions
	}
	out := &models.Document{}
	if err := d.client.call(ctx, "databases.createDocument", http.MethodPost, path, nil, body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDocument patches a document. A nil data or permissions leaves that
// part unchanged.
func (d *Databases) UpdateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any, permissions []string) (*models.Document, error) {
	path, err := documentPath(databaseID, collectionID, documentID)
	if err != nil {
		return nil, err
	}
	body := map[string]any{}
	if data != nil {
		body["data"] = data
	}
	if permissions != nil {
		body["permissions"] = permissions
	}
	out := &models.Document{}
	if err := d.client.call(ctx, "databases.updateDocument", http.MethodPatch, path, nil, body, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Databases) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	path, err := documentPath(databaseID, collectionID, documentID)
	if err != nil {
		return err
	}
	return d.client.call(ctx, "databases.deleteDocument", http.MethodDelete, path, nil, nil, nil)
}
