package core

type Credentials struct {
	Username string
	Password string
}

type MessageRecord struct {
	ID       uint
	UserName string
	Contents string
}
