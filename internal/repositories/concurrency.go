package repositories

/*
EntityWithVersion:

* `comparable`  → lets us use `==` to compare two values of type T
* the three version accessors
*/
type EntityWithVersion interface {
	comparable
	GetID() string
	GetRowVersion() int64
	SetRowVersion(int64)
}
