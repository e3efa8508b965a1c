package domain

// SupportCategory groups support resources in the alert view.
type SupportCategory string

const (
	SupportEmergency  SupportCategory = "emergency"
	SupportCounseling SupportCategory = "counseling"
	SupportHotline    SupportCategory = "hotline"
	SupportCommunity  SupportCategory = "community"
)

// SupportResource is a mental-health contact shown alongside a risk alert.
type SupportResource struct {
	ID          string
	Name        string
	Description string
	Phone       string
	Website     string
	Hours       string
	Category    SupportCategory
}

var supportResources = []SupportResource{
	{ID: "1", Name: "Suicide Prevention Hotline", Description: "24-hour crisis and suicide prevention counseling", Phone: "1393", Website: "https://www.kfsp.or.kr", Hours: "24h", Category: SupportEmergency},
	{ID: "2", Name: "Mental Health Crisis Line", Description: "Professional counseling for mental health crises", Phone: "1577-0199", Website: "https://www.mentalhealth.go.kr", Hours: "24h", Category: SupportEmergency},
	{ID: "3", Name: "Youth Counseling Line", Description: "Counseling for young people in difficulty", Phone: "1388", Website: "https://www.cyber1388.kr", Hours: "24h", Category: SupportHotline},
	{ID: "4", Name: "Lifeline Korea", Description: "Suicide prevention and emotional support", Phone: "1588-9191", Website: "https://www.lifeline.or.kr", Hours: "24h", Category: SupportHotline},
	{ID: "5", Name: "Maeum Ieum", Description: "Mental health information and referral to specialist services", Phone: "1577-0199", Website: "https://www.mentalhealth.go.kr", Hours: "Weekdays 09-18", Category: SupportCounseling},
	{ID: "6", Name: "Korea Psychological Counseling Center", Description: "One-on-one sessions with a counselor", Phone: "1899-1231", Website: "https://www.kpcc.or.kr", Hours: "Weekdays 10-19", Category: SupportCounseling},
	{ID: "7", Name: "Korean Neuropsychiatric Association", Description: "Find a psychiatrist and mental health information", Website: "https://www.knpa.or.kr", Hours: "Weekdays 09-18", Category: SupportCommunity},
}

// SupportResources returns a copy of the support catalog.
func SupportResources() []SupportResource {
	out := make([]SupportResource, len(supportResources))
	copy(out, supportResources)
	return out
}
