// Package dto defines the form shapes submitted to the auth handlers.
package dto

// SignUpForm is the account registration form.
type SignUpForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}
