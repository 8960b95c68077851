package schema

import (
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/validation"
)

var passwordMessages = map[string]string{
	"strong_password": "Password should have a minimum length of 8 characters with at least one lowercase letter, one uppercase letter, one number and one special character",
	"min":             "Password should have a minimum length of {limit} characters.",
	"required":        "You need to provide a password",
}

var mobileMessages = map[string]string{
	"mobile_number": "Phone number must be between 10 to 15 digits and contain only numbers.",
	"empty":         "Phone number cannot be empty.",
}

// profileFields are the user fields that can be set at sign-up and changed later.
var profileFields = []validation.Field{
	{Name: "firstName", Kind: validation.KindString, Required: true, Rules: "min=2,max=30,person_name"},
	{Name: "lastName", Kind: validation.KindString, Required: true, Rules: "min=2,max=30,person_name"},
	{Name: "userName", Kind: validation.KindString, Required: true, Rules: "min=2,max=30,no_emoji"},
	emailField("email", true),
	emailField("recoveryEmail", true),
	{Name: "DOB", Label: "Date of birth", Kind: validation.KindString, Required: true, Rules: "datetime=2006-01-02,past_date"},
	{Name: "mobileNumber", Kind: validation.KindString, Required: true, Rules: "mobile_number", Messages: mobileMessages},
}

func newPasswordField(name string) validation.Field {
	return validation.Field{
		Name:     name,
		Label:    "Password",
		Kind:     validation.KindString,
		Required: true,
		Rules:    "min=8,max=72,strong_password",
		Messages: passwordMessages,
	}
}

func userSets() map[Endpoint]validation.Set {
	signUpBody := (&validation.Object{Fields: profileFields}).Extend(
		newPasswordField("password"),
		validation.Field{
			Name: "role", Kind: validation.KindString, Required: true, Rules: oneOf(domain.Roles),
			Messages: map[string]string{"oneof": "role must be one of {valids}.", "empty": "role cannot be empty."},
		},
	)

	signInBody := &validation.Object{Fields: []validation.Field{
		emailField("email", true),
		{Name: "password", Kind: validation.KindString, Required: true, Rules: "max=128",
			Messages: map[string]string{"required": "You need to provide a password"}},
	}}

	updateBody := (&validation.Object{Fields: profileFields}).Optional(1)

	passwordBody := &validation.Object{Fields: []validation.Field{
		{Name: "currentPassword", Label: "Current password", Kind: validation.KindString, Required: true, Rules: "max=128"},
		newPasswordField("newPassword"),
	}}

	return map[Endpoint]validation.Set{
		UsersSignUp:         {Headers: writeHeaders, Body: signUpBody},
		UsersSignIn:         {Headers: writeHeaders, Body: signInBody},
		UsersSignOut:        {Headers: readHeaders},
		UsersList:           {Headers: readHeaders, Query: listQuery},
		UsersGet:            {Headers: readHeaders, Params: idParams},
		UsersUpdateSelf:     {Headers: writeHeaders, Body: updateBody},
		UsersUpdate:         {Headers: writeHeaders, Params: idParams, Body: updateBody},
		UsersChangePassword: {Headers: writeHeaders, Body: passwordBody},
		UsersDeleteSelf:     {Headers: readHeaders},
		UsersDelete:         {Headers: readHeaders, Params: idParams},
	}
}
