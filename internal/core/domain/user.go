package domain

import "time"

// User is the identity aggregate. It is an immutable value: Update returns a
// new User and leaves the receiver untouched.
type User struct {
	id           UserID
	firstName    Name
	lastName     Name
	email        Email
	age          Age
	passwordHash PasswordHash
	createdAt    time.Time
	updatedAt    time.Time
}

// UserChanges carries the optional fields of an update. Nil keeps the current
// value.
type UserChanges struct {
	FirstName    *Name
	LastName     *Name
	Email        *Email
	Age          *Age
	PasswordHash *PasswordHash
}

// NewUser builds a user with a generated id. createdAt and updatedAt are equal.
func NewUser(firstName, lastName Name, email Email, age Age, passwordHash PasswordHash) User {
	now := time.Now().UTC()
	return User{
		id:           GenerateUserID(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		age:          age,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(
	id UserID,
	firstName, lastName Name,
	email Email,
	age Age,
	passwordHash PasswordHash,
	createdAt, updatedAt time.Time,
) User {
	return User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		age:          age,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update merges changes into a copy of u. id and createdAt never change;
// updatedAt is refreshed even when nothing else differs.
func (u User) Update(changes UserChanges) User {
	next := u
	if changes.FirstName != nil {
		next.firstName = *changes.FirstName
	}
	if changes.LastName != nil {
		next.lastName = *changes.LastName
	}
	if changes.Email != nil {
		next.email = *changes.Email
	}
	if changes.Age != nil {
		next.age = *changes.Age
	}
	if changes.PasswordHash != nil {
		next.passwordHash = *changes.PasswordHash
	}
	next.updatedAt = time.Now().UTC()
	return next
}

func (u User) ID() UserID                 { return u.id }
func (u User) FirstName() Name            { return u.firstName }
func (u User) LastName() Name             { return u.lastName }
func (u User) Email() Email               { return u.email }
func (u User) Age() Age                   { return u.age }
func (u User) PasswordHash() PasswordHash { return u.passwordHash }
func (u User) CreatedAt() time.Time       { return u.createdAt }
func (u User) UpdatedAt() time.Time       { return u.updatedAt }

func (u User) FullName() string {
	return u.firstName.String() + " " + u.lastName.String()
}

func (u User) FullNameCapitalized() string {
	return u.firstName.Capitalized() + " " + u.lastName.Capitalized()
}
