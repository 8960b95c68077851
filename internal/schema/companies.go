package schema

import (
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/validation"
)

var companyNameField = validation.Field{
	Name: "companyName", Kind: validation.KindString, Required: true,
	Rules: "min=2,max=100,company_name",
	Messages: map[string]string{
		"company_name": "Company name can only contain letters, numbers, spaces, and the following characters: , . ' -",
	},
}

var companyBody = &validation.Object{Fields: []validation.Field{
	companyNameField,
	{Name: "description", Kind: validation.KindString, Required: true, Rules: "min=10,max=500"},
	{
		Name: "industry", Kind: validation.KindString, Required: true, Rules: oneOf(domain.Industries),
		Messages: map[string]string{"oneof": "Industry must be one of the predefined values: {valids}."},
	},
	emailField("companyEmail", true),
	{
		Name: "address", Kind: validation.KindString, Required: true, Rules: "min=10,max=100,address",
		Messages: map[string]string{
			"min":     "Address must be between 10 and 100 characters and can contain letters, numbers, spaces, and the following characters: , . ' -",
			"max":     "Address must be between 10 and 100 characters and can contain letters, numbers, spaces, and the following characters: , . ' -",
			"address": "Address must be between 10 and 100 characters and can contain letters, numbers, spaces, and the following characters: , . ' -",
		},
	},
	{Name: "numberOfEmployees", Kind: validation.KindInteger, Required: true, Rules: "min=1,max=10000"},
}}

func companySets() map[Endpoint]validation.Set {
	searchQuery := listQuery.Extend(companyNameField)

	return map[Endpoint]validation.Set{
		CompaniesCreate: {Headers: writeHeaders, Body: companyBody},
		CompaniesList:   {Headers: readHeaders, Query: listQuery},
		CompaniesSearch: {Headers: readHeaders, Query: searchQuery},
		CompaniesGet:    {Headers: readHeaders, Params: idParams},
		CompaniesUpdate: {Headers: writeHeaders, Params: idParams, Body: companyBody.Optional(1)},
		CompaniesDelete: {Headers: readHeaders, Params: idParams},
	}
}
