package types

import "errors"

// Store is the exclusive owner of all reads and writes against the five
// entity kinds. It is the single place where cascade and consistency rules
// are enforced; callers (CLI, HTTP adapter) only parse input and shape
// responses.
//
// Every mutation runs in its own unit of work: on any failure the in-flight
// transaction is rolled back and nothing is left half-applied. NotFound and
// reference errors are expected, recoverable conditions; any other error is
// a storage failure wrapping the underlying cause.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, all operations return ErrStoreDetached.
	Detach() error

	// CreateClass persists a new class with a generated ID and canvas
	// position (0, 0). Duplicate names are permitted.
	CreateClass(name string) (*ClassModel, error)

	// ListClasses returns every class, hydrated one level down: each class
	// carries its Attributes (with their Properties) and DataEntries.
	// Ordering is storage order; no guarantee is made.
	ListClasses() ([]*ClassModel, error)

	// GetClass returns the class with the given ID without hydration.
	// Returns ErrNotFound if the ID does not resolve.
	GetClass(id string) (*ClassModel, error)

	// UpdateClass applies the non-nil fields of upd and returns the updated
	// class. An empty payload is a no-op that still reloads the row.
	UpdateClass(id string, upd ClassUpdate) (*ClassModel, error)

	// DeleteClass removes the class. Its attributes (with their properties)
	// and data rows are cascade-deleted; connections referencing the class
	// are deliberately left in place.
	DeleteClass(id string) error

	// ListAttributesByClass returns the attributes of a class, each with
	// its Properties hydrated.
	ListAttributesByClass(classID string) ([]*Attribute, error)

	// GetAttribute returns the attribute with the given ID, with its
	// Properties hydrated.
	GetAttribute(id string) (*Attribute, error)

	// CreateAttribute persists a new attribute. Returns ErrClassNotFound
	// before persisting anything if classID does not resolve.
	CreateAttribute(classID, name, dataType string) (*Attribute, error)

	// UpdateAttribute applies the non-nil fields of upd.
	UpdateAttribute(id string, upd AttributeUpdate) (*Attribute, error)

	// DeleteAttribute removes the attribute, cascade-deleting its
	// properties, and returns the attribute's prior state.
	DeleteAttribute(id string) (*Attribute, error)

	// ListPropertiesByAttribute returns the properties of an attribute.
	ListPropertiesByAttribute(attributeID string) ([]*Property, error)

	// GetProperty returns the property with the given ID.
	GetProperty(id string) (*Property, error)

	// CreateProperty persists a new property on an attribute.
	CreateProperty(attributeID, name, value string) (*Property, error)

	// UpdateProperty applies the non-nil fields of upd.
	UpdateProperty(id string, upd PropertyUpdate) (*Property, error)

	// DeleteProperty removes the property and returns its prior state.
	DeleteProperty(id string) (*Property, error)

	// ListDataByClass returns the data rows of a class.
	ListDataByClass(classID string) ([]*Data, error)

	// GetData returns the data row with the given ID.
	GetData(id string) (*Data, error)

	// CreateData persists a new data row holding an arbitrary JSON document.
	CreateData(classID string, content []byte) (*Data, error)

	// BatchCreateData inserts all rows in one unit of work and returns the
	// number inserted. All-or-nothing: any row failure rolls back the whole
	// batch.
	BatchCreateData(items []DataCreate) (int, error)

	// UpdateData replaces the stored document when upd.Content is non-nil.
	UpdateData(id string, upd DataUpdate) (*Data, error)

	// DeleteData removes the data row and returns its prior state.
	DeleteData(id string) (*Data, error)

	// BatchDeleteData removes the given data rows in one unit of work,
	// internally chunked to bound statement size. IDs that do not resolve
	// are silently skipped; the returned count is the number of IDs
	// requested, not the number matched.
	BatchDeleteData(ids []string) (int, error)

	// ListConnections returns every connection as a raw projection, without
	// joining class names.
	ListConnections() ([]*Connection, error)

	// GetConnection returns the connection with the given ID.
	GetConnection(id string) (*Connection, error)

	// CreateConnection persists a new connection. Returns
	// ErrInvalidRelationship or ErrClassNotFound before persisting anything
	// if the relationship tag or either endpoint does not check out.
	CreateConnection(sourceClass, targetClass, relationshipType string) (*Connection, error)

	// DeleteConnection removes the connection.
	DeleteConnection(id string) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Operation errors. NotFound and the reference/input errors are expected,
// recoverable conditions; anything else surfacing from the Store is a
// storage failure carrying the underlying cause.
var (
	ErrNotFound            = errors.New("entity not found")
	ErrClassNotFound       = errors.New("class not found")
	ErrInvalidID           = errors.New("invalid entity ID")
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidValue        = errors.New("value must not be empty")
	ErrInvalidDataType     = errors.New("data type must not be empty")
	ErrInvalidContent      = errors.New("content must not be empty")
	ErrInvalidRelationship = errors.New("invalid relationship type")
)
