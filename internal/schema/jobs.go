package schema

import (
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/validation"
)

func skillsField(name string) validation.Field {
	return validation.Field{
		Name: name, Kind: validation.KindStringList, Required: true,
		Rules: "min=1,max=30,dive,notblank,max=50",
	}
}

var jobBody = &validation.Object{Fields: []validation.Field{
	{Name: "jobTitle", Kind: validation.KindString, Required: true, Rules: "min=2,max=100,no_emoji"},
	{Name: "jobLocation", Kind: validation.KindString, Required: true, Rules: oneOf(domain.JobLocations)},
	{Name: "workingTime", Kind: validation.KindString, Required: true, Rules: oneOf(domain.WorkingTimes)},
	{Name: "seniorityLevel", Kind: validation.KindString, Required: true, Rules: oneOf(domain.SeniorityLevels)},
	{Name: "jobDescription", Kind: validation.KindString, Required: true, Rules: "min=10,max=5000"},
	skillsField("technicalSkills"),
	skillsField("softSkills"),
}}

func jobSets() map[Endpoint]validation.Set {
	forCompanyQuery := listQuery.Extend(companyNameField)

	return map[Endpoint]validation.Set{
		JobsCreate:     {Headers: writeHeaders, Body: jobBody},
		JobsList:       {Headers: readHeaders, Query: listQuery},
		JobsForCompany: {Headers: readHeaders, Query: forCompanyQuery},
		JobsGet:        {Headers: readHeaders, Params: idParams},
		JobsUpdate:     {Headers: writeHeaders, Params: idParams, Body: jobBody.Optional(1)},
		JobsDelete:     {Headers: readHeaders, Params: idParams},
	}
}
