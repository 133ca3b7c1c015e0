package ports

type UserLookupPort interface {
	UserName() (string, error)
}
