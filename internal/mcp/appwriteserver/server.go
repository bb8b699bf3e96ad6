package appwriteserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/appwrite/starter-for-vue/internal/version"
	"github.com/appwrite/starter-for-vue/pkg/models"
	"github.com/appwrite/starter-for-vue/pkg/query"
)

const (
	serverName = "appwrite-mcp"

	defaultPageLimit = 25
	maxPageLimit     = 100
)

// Pinger is the part of the shared client the bridge needs.
type Pinger interface {
	Ping(ctx context.Context) (string, error)
	Endpoint() string
	Project() string
}

type AccountService interface {
	Get(ctx context.Context) (*models.User, error)
}

type DocumentService interface {
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) (*models.DocumentList, error)
	GetDocument(ctx context.Context, databaseID, collectionID, documentID string, queries []string) (*models.Document, error)
}

// Services are the Appwrite handles exposed as tools.
type Services struct {
	Client      Pinger
	Account     AccountService
	Databases   DocumentService
	ProjectName string
}

// NewServer constructs an MCP server that exposes read-only tools backed by
// the Appwrite handles. Calls run with whatever credentials the client holds.
func NewServer(svc Services) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version.Version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	addProjectTools(server, svc)
	addAccountTools(server, svc.Account)
	addDocumentTools(server, svc.Databases)

	return server
}

type PingPayload struct {
	Response string `json:"response"`
	Endpoint string `json:"endpoint"`
	Project  string `json:"project"`
}

type ProjectInfoPayload struct {
	Endpoint      string `json:"endpoint"`
	ProjectID     string `json:"project_id"`
	ProjectName   string `json:"project_name"`
	ClientVersion string `json:"client_version"`
}

func addProjectTools(server *mcp.Server, svc Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "appwrite_ping",
		Description: "Check that the Appwrite endpoint is reachable for the configured project",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, PingPayload, error) {
		resp, err := svc.Client.Ping(ctx)
		if err != nil {
			return nil, PingPayload{}, fmt.Errorf("ping failed: %w", err)
		}
		return nil, PingPayload{
			Response: resp,
			Endpoint: svc.Client.Endpoint(),
			Project:  svc.Client.Project(),
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_info",
		Description: "Return the endpoint, project id and project name this bridge is configured with",
	}, func(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ProjectInfoPayload, error) {
		return nil, ProjectInfoPayload{
			Endpoint:      svc.Client.Endpoint(),
			ProjectID:     svc.Client.Project(),
			ProjectName:   svc.ProjectName,
			ClientVersion: version.Version,
		}, nil
	})
}

type AccountPayload struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	EmailVerification bool           `json:"email_verification"`
	Labels            []string       `json:"labels"`
	Prefs             map[string]any `json:"prefs"`
}

func addAccountTools(server *mcp.Server, account AccountService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_account",
		Description: "Fetch the user the client is signed in as",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, AccountPayload, error) {
		user, err := account.Get(ctx)
		if err != nil {
			return nil, AccountPayload{}, err
		}
		out := AccountPayload{
			ID:                user.ID,
			Name:              user.Name,
			Email:             user.Email,
			EmailVerification: user.EmailVerification,
			Labels:            user.Labels,
			Prefs:             user.Prefs,
		}
		if out.Labels == nil {
			out.Labels = []string{}
		}
		if out.Prefs == nil {
			out.Prefs = map[string]any{}
		}
		return nil, out, nil
	})
}

type DocumentPayload struct {
	ID           string         `json:"id"`
	CollectionID string         `json:"collection_id"`
	DatabaseID   string         `json:"database_id"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	Permissions  []string       `json:"permissions"`
	Data         map[string]any `json:"data"`
}

type DocumentListPayload struct {
	Total     int               `json:"total"`
	Count     int               `json:"count"`
	Documents []DocumentPayload `json:"documents"`
}

type listDocumentsArgs struct {
	DatabaseID   string   `json:"database_id"`
	CollectionID string   `json:"collection_id"`
	Queries      []string `json:"queries,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	Cursor       string   `json:"cursor,omitempty"`
}

type getDocumentArgs struct {
	DatabaseID   string `json:"database_id"`
	CollectionID string `json:"collection_id"`
	DocumentID   string `json:"document_id"`
}

func addDocumentTools(server *mcp.Server, databases DocumentService) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List documents in a collection with optional Appwrite queries and cursor pagination",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args listDocumentsArgs) (*mcp.CallToolResult, DocumentListPayload, error) {
		if args.DatabaseID == "" || args.CollectionID == "" {
			return nil, DocumentListPayload{}, fmt.Errorf("database_id and collection_id are required")
		}

		queries, limit := withoutLimit(args.Queries, args.Limit)
		queries = append(queries, query.Limit(clampLimit(limit)))
		if args.Cursor != "" {
			queries = append(queries, query.CursorAfter(args.Cursor))
		}

		list, err := databases.ListDocuments(ctx, args.DatabaseID, args.CollectionID, queries)
		if err != nil {
			return nil, DocumentListPayload{}, err
		}

		out := DocumentListPayload{
			Total:     list.Total,
			Count:     len(list.Documents),
			Documents: make([]DocumentPayload, len(list.Documents)),
		}
		for i, d := range list.Documents {
			out.Documents[i] = documentPayload(d)
		}
		return nil, out, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_document",
		Description: "Fetch a single document by id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args getDocumentArgs) (*mcp.CallToolResult, DocumentPayload, error) {
		if args.DatabaseID == "" || args.CollectionID == "" || args.DocumentID == "" {
			return nil, DocumentPayload{}, fmt.Errorf("database_id, collection_id and document_id are required")
		}
		doc, err := databases.GetDocument(ctx, args.DatabaseID, args.CollectionID, args.DocumentID, nil)
		if err != nil {
			return nil, DocumentPayload{}, err
		}
		return nil, documentPayload(*doc), nil
	})
}

func documentPayload(d models.Document) DocumentPayload {
	out := DocumentPayload{
		ID:           d.ID,
		CollectionID: d.CollectionID,
		DatabaseID:   d.DatabaseID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Permissions:  d.Permissions,
		Data:         d.Data,
	}
	if out.Permissions == nil {
		out.Permissions = []string{}
	}
	if out.Data == nil {
		out.Data = map[string]any{}
	}
	return out
}

// withoutLimit drops limit queries from queries so exactly one clamped limit
// is sent. A limit query only counts when the explicit limit is unset.
func withoutLimit(queries []string, limit int) ([]string, int) {
	out := make([]string, 0, len(queries)+2)
	for _, q := range queries {
		p, err := query.Parse(q)
		if err != nil || p.Method != "limit" {
			out = append(out, q)
			continue
		}
		if limit == 0 && len(p.Values) == 1 {
			if n, ok := p.Values[0].(float64); ok {
				limit = int(n)
			}
		}
	}
	return out, limit
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
