// models/user.go
package models

// User é o registro armazenado na tabela, chaveado por userId.
// Age usa ponteiro para distinguir "sem idade cadastrada" de idade zero.
type User struct {
	UserID    string `json:"userId" dynamodbav:"userId"`
	Name      string `json:"name" dynamodbav:"name"`
	Email     string `json:"email" dynamodbav:"email"`
	Age       *int   `json:"age,omitempty" dynamodbav:"age,omitempty"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt string `json:"updatedAt" dynamodbav:"updatedAt"`
}
