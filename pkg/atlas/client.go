package atlas

import (
	"context"
	"io"
)

// ContentsClient manages the entries of content models.
type ContentsClient interface {
	Create(ctx context.Context, modelKey string, attributes interface{}, locale string) (string, error)
	CreateTranslation(ctx context.Context, modelKey, id, locale string) (string, error)
	Duplicate(ctx context.Context, modelKey, id string) (string, error)
	DuplicateAll(ctx context.Context, modelKey, id string) ([]string, error)
	Get(ctx context.Context, modelKey, id string) (*Content[Attributes], error)
	GetInto(ctx context.Context, modelKey, id string, out interface{}) error
	List(ctx context.Context, modelKey string, query *ContentsQuery) (*PagedList[Content[Attributes]], error)
	ListInto(ctx context.Context, modelKey string, query *ContentsQuery, out interface{}) error
	Update(ctx context.Context, modelKey, id string, attributes interface{}) error
	Delete(ctx context.Context, modelKey, id string) error
}

// AssetsClient manages the files of the media library.
type AssetsClient interface {
	Get(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context, query *AssetsQuery) (*PagedList[Asset], error)
	Upload(ctx context.Context, fileName string, content []byte, folder string) (string, error)
	Download(ctx context.Context, id string) ([]byte, error)
	DownloadStream(ctx context.Context, id string) (io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}

// FoldersClient manages the folder tree of the media library.
type FoldersClient interface {
	Create(ctx context.Context, path string) (string, error)
	List(ctx context.Context) ([]Folder, error)
	Move(ctx context.Context, path, moveTo string) (string, error)
	Rename(ctx context.Context, path, newName string) (string, error)
	Delete(ctx context.Context, path string) error
}

// UsersClient manages end users.
type UsersClient interface {
	Get(ctx context.Context, id string) (*User, error)
	GetInto(ctx context.Context, id string, out interface{}) error
	List(ctx context.Context, query *UsersQuery) (*PagedList[User], error)
	ListInto(ctx context.Context, query *UsersQuery, out interface{}) error
	Register(ctx context.Context, user interface{}) (string, error)
	Update(ctx context.Context, id string, user interface{}) error
	ChangePassword(ctx context.Context, id, newPassword string) error
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, username, password string) (*AuthToken, error)
}

// RolesClient manages the roles of end users.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
	Create(ctx context.Context, role *Role) (string, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id string) error
}

// AccountsClient manages management accounts.
type AccountsClient interface {
	Get(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context, query *AccountsQuery) (*PagedList[Account], error)
	Create(ctx context.Context, account *RegisterAccount) (string, error)
	Update(ctx context.Context, account *Account) error
	ChangePassword(ctx context.Context, id, newPassword string) error
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, username, password string) (*AuthToken, error)
}

// AccountRolesClient manages the roles of management accounts.
type AccountRolesClient interface {
	List(ctx context.Context) ([]AccountRole, error)
	Create(ctx context.Context, role *AccountRole) (string, error)
	Update(ctx context.Context, role *AccountRole) error
	Delete(ctx context.Context, id string) error
}

// APIKeysClient manages management API keys.
type APIKeysClient interface {
	Get(ctx context.Context, id string) (*APIKey, error)
	List(ctx context.Context) ([]APIKey, error)
	Create(ctx context.Context, apiKey *APIKey) (string, error)
	Update(ctx context.Context, apiKey *APIKey) error
	Delete(ctx context.Context, id string) error
}

// WebhooksClient manages webhooks.
type WebhooksClient interface {
	Get(ctx context.Context, id string) (*Webhook, error)
	List(ctx context.Context) ([]Webhook, error)
	Create(ctx context.Context, webhook *Webhook) (string, error)
	Update(ctx context.Context, webhook *Webhook) error
	Delete(ctx context.Context, id string) error
}

// ModelsClient manages content model schemas.
type ModelsClient interface {
	Create(ctx context.Context, model *Model) (string, error)
	Update(ctx context.Context, model *Model) error
	Delete(ctx context.Context, id string) error
}

// ComponentsClient manages component schemas.
type ComponentsClient interface {
	Create(ctx context.Context, component *Component) (string, error)
	Update(ctx context.Context, component *Component) error
	Delete(ctx context.Context, id string) error
}

// SettingsClient reads project settings.
type SettingsClient interface {
	Get(ctx context.Context) (*Settings, error)
}

// DeliveryClients provides access to the content delivery resources.
type DeliveryClients interface {
	Contents() ContentsClient
	Assets() AssetsClient
	Folders() FoldersClient
}

// UserClients provides access to end-user resources.
type UserClients interface {
	Users() UsersClient
	Roles() RolesClient
}

// ManagementClients provides access to administrative resources.
type ManagementClients interface {
	Accounts() AccountsClient
	AccountRoles() AccountRolesClient
	APIKeys() APIKeysClient
	Webhooks() WebhooksClient
	Models() ModelsClient
	Components() ComponentsClient
	Settings() SettingsClient
}

// Client is the Atlas API client.
type Client interface {
	DeliveryClients
	UserClients
	ManagementClients

	// UseToken sets a one-shot bearer token consumed by the next request,
	// whatever its outcome. Later requests fall back to the API key.
	UseToken(token string) Client
}

// GetContent fetches a content and decodes its attributes into T.
func GetContent[T any](ctx context.Context, client ContentsClient, modelKey, id string) (*Content[T], error) {
	content := &Content[T]{}

	err := client.GetInto(ctx, modelKey, id, content)
	if err != nil {
		return nil, err
	}

	return content, nil
}

// ListContents lists contents and decodes their attributes into T.
func ListContents[T any](ctx context.Context, client ContentsClient, modelKey string, query *ContentsQuery) (*PagedList[Content[T]], error) {
	list := &PagedList[Content[T]]{}

	err := client.ListInto(ctx, modelKey, query, list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// GetUser fetches a user and decodes its attributes into T.
func GetUser[T any](ctx context.Context, client UsersClient, id string) (*UserOf[T], error) {
	user := &UserOf[T]{}

	err := client.GetInto(ctx, id, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
