package atlas

import "time"

// Content represents an entry of a content model. T is the shape of the
// attributes; Attributes is used when the shape is not known in advance.
type Content[T any] struct {
	Audit

	ID         string `json:",omitempty"`
	Attributes T

	locale  string
	hash    string
	locales []ContentLocale
}

// Locale returns the locale of this translation.
func (c Content[T]) Locale() string { return c.locale }

// Hash returns the server-computed hash of the attributes.
func (c Content[T]) Hash() string { return c.hash }

// Locales lists the translations of the content.
func (c Content[T]) Locales() []ContentLocale { return c.locales }

// ContentLocale identifies one translation of a content.
type ContentLocale struct {
	ID     string
	Locale string
}

// Asset represents a file stored in the media library.
type Asset struct {
	Audit

	id string

	Code                 string
	Folder               string
	Type                 string
	Author               string `json:",omitempty"`
	Copyright            string `json:",omitempty"`
	OriginalFileName     string
	Name                 string
	Format               string
	Hash                 string
	MimeType             string
	Size                 int64
	AutomaticTags        []string                 `json:",omitempty"`
	Tags                 []string                 `json:",omitempty"`
	Height               *int                     `json:",omitempty"`
	Width                *int                     `json:",omitempty"`
	HorizontalResolution *float64                 `json:",omitempty"`
	VerticalResolution   *float64                 `json:",omitempty"`
	Duration             *float64                 `json:",omitempty"`
	Fps                  *float64                 `json:",omitempty"`
	Codec                string                   `json:",omitempty"`
	Exif                 map[string]interface{}   `json:",omitempty"`
	URL                  string                   `json:",omitempty"`
	Metadata             map[string]AssetMetadata `json:",omitempty"`
}

// ID returns the asset identifier assigned by the server.
func (a Asset) ID() string { return a.id }

// AssetMetadata holds the localized descriptive texts of an asset.
type AssetMetadata struct {
	Alt   string `json:",omitempty"`
	Title string `json:",omitempty"`
	Notes string `json:",omitempty"`
}

// Folder is a node of the media library folder tree.
type Folder struct {
	id       string
	text     string
	path     string
	children []Folder
}

func (f Folder) ID() string         { return f.id }
func (f Folder) Text() string       { return f.text }
func (f Folder) Path() string       { return f.path }
func (f Folder) Children() []Folder { return f.children }

// UserOf represents an end user of the delivery API. T is the shape of the
// custom user attributes.
type UserOf[T any] struct {
	Audit

	ID          string   `json:",omitempty"`
	FirstName   string   `json:",omitempty"`
	LastName    string   `json:",omitempty"`
	Username    string   `json:",omitempty"`
	Email       string   `json:",omitempty"`
	MobilePhone string   `json:",omitempty"`
	Roles       []string `json:",omitempty"`
	IsActive    bool
	Attributes  T `json:",omitempty"`
}

// User is a user with free-form attributes.
type User = UserOf[Attributes]

// RegisterUserOf is the payload of a user registration.
type RegisterUserOf[T any] struct {
	FirstName   string   `json:",omitempty"`
	LastName    string   `json:",omitempty"`
	Username    string   `json:",omitempty"`
	Email       string   `json:",omitempty"`
	MobilePhone string   `json:",omitempty"`
	Roles       []string `json:",omitempty"`
	IsActive    bool
	Password    string `json:",omitempty"`
	Attributes  T      `json:",omitempty"`
}

// RegisterUser registers a user with free-form attributes.
type RegisterUser = RegisterUserOf[Attributes]

// Role groups permissions granted to users.
type Role struct {
	id     string
	system bool

	Name        string
	Permissions []string
}

// NewRole returns a role with the given identifier, for updates.
func NewRole(id, name string, permissions ...string) Role {
	return Role{id: id, Name: name, Permissions: permissions}
}

// ID returns the role identifier.
func (r Role) ID() string { return r.id }

// System reports whether the role is built in and cannot be removed.
func (r Role) System() bool { return r.system }

// AccountRole groups permissions granted to management accounts.
type AccountRole = Role

// Account represents a management account.
type Account struct {
	Audit

	ID        string `json:",omitempty"`
	FirstName string
	LastName  string
	Username  string
	IsActive  bool
	Roles     []string
}

// RegisterAccount is the payload of an account creation.
type RegisterAccount struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	IsActive  bool
	Roles     []string
}

// APIKey represents a management API key.
type APIKey struct {
	ID          string `json:",omitempty"`
	Name        string
	IsActive    bool
	Key         string     `json:",omitempty"`
	ValidFrom   *time.Time `json:",omitempty"`
	ValidTo     *time.Time `json:",omitempty"`
	Permissions []string
}

// Webhook represents an outgoing notification subscription.
type Webhook struct {
	Audit

	ID             string `json:",omitempty"`
	Name           string
	URL            string
	Enabled        bool
	IncludePayload bool
	Headers        []KeyValue
	EntityType     string
	Events         []string
	EntityTypeIDs  []string `json:"entityTypeIds"`
}

// SchemaType distinguishes content-type schemas.
type SchemaType int

const (
	SchemaModel SchemaType = iota
	SchemaComponent
	SchemaUser
)

// EnumNames implements Enum.
func (SchemaType) EnumNames() []string {
	return []string{"model", "component", "user"}
}

// Field describes one attribute of a model or component.
type Field struct {
	Key         string
	Label       string
	Help        string `json:",omitempty"`
	Order       int
	Type        string
	Localizable bool
	Hidden      bool
	ReadOnly    bool
	Required    bool
}

// Model is a content-type schema whose entries are contents.
type Model struct {
	Audit

	ID          string `json:",omitempty"`
	Name        string
	Key         string
	Description string `json:",omitempty"`
	Type        SchemaType
	Attributes  []Field
	IsSingle    bool
	System      bool
	Localizable bool
}

// NewModel returns a model schema.
func NewModel(key, name string) *Model {
	return &Model{Key: key, Name: name, Type: SchemaModel}
}

// Component is a reusable group of fields embedded into models.
type Component struct {
	Audit

	ID          string `json:",omitempty"`
	Name        string
	Key         string
	Description string `json:",omitempty"`
	Type        SchemaType
	Attributes  []Field
}

// NewComponent returns a component schema.
func NewComponent(key, name string) *Component {
	return &Component{Key: key, Name: name, Type: SchemaComponent}
}

// Settings represents the project settings.
type Settings struct {
	ProjectName  string
	UserSettings UserSettings
	Locales      []LocaleSettings
}

// UserSettings toggles the end-user features of a project.
type UserSettings struct {
	UsersEnabled bool
}

// LocaleSettings describes a locale enabled on the project.
type LocaleSettings struct {
	Locale    string
	IsDefault bool
}

// AuthTokenType tells which kind of principal a token was issued for.
type AuthTokenType int

const (
	AuthTokenUser AuthTokenType = iota
	AuthTokenAccount
)

// EnumNames implements Enum.
func (AuthTokenType) EnumNames() []string {
	return []string{"user", "account"}
}

// AuthToken is returned by the login endpoints.
type AuthToken struct {
	ID          string        `json:"id"`
	AccessToken string        `json:"access_token"`
	ExpiresAt   int64         `json:"expires_at"`
	Type        string        `json:"type"`
	AuthType    AuthTokenType `json:"auth_type"`
}

// Expiry returns the expiry instant of the token.
func (t *AuthToken) Expiry() time.Time {
	return time.Unix(t.ExpiresAt, 0)
}

// Credentials is the body of the login endpoints.
type Credentials struct {
	Username string
	Password string
}
