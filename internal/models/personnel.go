package models

import "time"

// Employee — сотрудник. Occupation ссылается на Department.ID.
type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	HireDate   time.Time
	Occupation int64
}

// Department — отдел.
type Department struct {
	ID       int64
	Name     string
	Location string
	Email    string
}
