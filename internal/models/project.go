package models

type Project struct {
	Id   string
	Name string
}
