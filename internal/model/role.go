package model

// Role classifies a user (borrower, loan officer, admin).
type Role struct {
	RoleID   uint   `json:"RoleID" gorm:"primaryKey;autoIncrement"`
	RoleName string `json:"RoleName" gorm:"size:50;not null;uniqueIndex"`
}
