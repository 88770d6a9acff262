package domain

// FieldSet is the canonical extraction payload. Every field is present in
// the serialized form, nil marshalling to an explicit null, so downstream
// consumers never have to probe for key existence.
type FieldSet struct {
	PolicyNumber    *string `json:"policy_number"`
	PolicyIssueDate *string `json:"policy_issue_date"`
	PolicyStartDate *string `json:"policy_start_date"`
	PolicyEndDate   *string `json:"policy_end_date"`

	InsuredName     *string `json:"insured_name"`
	InsuredTCNumber *string `json:"insured_tc_number"`
	InsuredAddress  *string `json:"insured_address"`
	InsuredPhone    *string `json:"insured_phone"`

	VehiclePlate   *string `json:"vehicle_plate"`
	VehicleBrand   *string `json:"vehicle_brand"`
	VehicleModel   *string `json:"vehicle_model"`
	VehicleYear    *string `json:"vehicle_year"`
	VehicleChassis *string `json:"vehicle_chassis"`
	VehicleMotor   *string `json:"vehicle_motor"`
	VehicleOwner   *string `json:"vehicle_owner"`
	VehicleValue   *string `json:"vehicle_value"`

	InsuranceCompany *string `json:"insurance_company"`
	CompanyAddress   *string `json:"company_address"`
	CompanyPhone     *string `json:"company_phone"`
	CompanyTaxID     *string `json:"company_tax_id"`
	AgentCode        *string `json:"agent_code"`

	GrossPremium *string `json:"gross_premium"`
	NetPremium   *string `json:"net_premium"`
	TotalAmount  *string `json:"total_amount"`
	TaxAmount    *string `json:"tax_amount"`
	PaymentPlan  *string `json:"payment_plan"`

	KaskoPremium    *string `json:"kasko_premium"`
	MaliSorumluluk  *string `json:"mali_sorumluluk"`
	FerdiKaza       *string `json:"ferdi_kaza"`
	HukuksalKoruma  *string `json:"hukuksal_koruma"`
	HasarsizlikOran *string `json:"hasarsizlik_orani"`
	TramerBelgeNo   *string `json:"tramer_belge_no"`

	DaskPolicyNumber *string `json:"dask_policy_number"`
	BuildingAddress  *string `json:"building_address"`
	BuildingCode     *string `json:"building_code"`

	ReportNumber   *string `json:"report_number"`
	DamageDate     *string `json:"damage_date"`
	DamageLocation *string `json:"damage_location"`
	SparePartsCost *string `json:"spare_parts_cost"`
	LaborCost      *string `json:"labor_cost"`
	TotalRepair    *string `json:"total_repair_cost"`

	ExpertName     *string `json:"expert_name"`
	ExpertRegistry *string `json:"expert_registry"`
	ValueLoss      *string `json:"value_loss"`
	ExpertOpinion  *string `json:"expert_opinion"`

	// Legacy aliases kept for older consumers of the payload. Always
	// populated from the canonical fields above, never extracted directly.
	CustomerName  *string `json:"customer_name"`
	TCNumber      *string `json:"tc_number"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	PlateNumber   *string `json:"plate_number"`
	ChassisNumber *string `json:"chassis_number"`
	MotorNumber   *string `json:"motor_number"`
}

// Set assigns a canonical field by its wire name. Unknown names are
// ignored so rule configuration can evolve ahead of the struct.
func (f *FieldSet) Set(name, value string) {
	if slot := f.slot(name); slot != nil {
		v := value
		*slot = &v
	}
}

// Value reads a canonical field by its wire name.
func (f *FieldSet) Value(name string) (string, bool) {
	slot := f.slot(name)
	if slot == nil || *slot == nil {
		return "", false
	}
	return **slot, true
}

// FillLegacyAliases mirrors canonical values into the legacy alias
// fields of the payload.
func (f *FieldSet) FillLegacyAliases() {
	alias := func(dst **string, src *string) {
		if *dst == nil && src != nil {
			v := *src
			*dst = &v
		}
	}
	alias(&f.CustomerName, f.InsuredName)
	alias(&f.TCNumber, f.InsuredTCNumber)
	alias(&f.StartDate, f.PolicyStartDate)
	alias(&f.EndDate, f.PolicyEndDate)
	alias(&f.PlateNumber, f.VehiclePlate)
	alias(&f.ChassisNumber, f.VehicleChassis)
	alias(&f.MotorNumber, f.VehicleMotor)
}

func (f *FieldSet) slot(name string) **string {
	switch name {
	case "policy_number":
		return &f.PolicyNumber
	case "policy_issue_date":
		return &f.PolicyIssueDate
	case "policy_start_date":
		return &f.PolicyStartDate
	case "policy_end_date":
		return &f.PolicyEndDate
	case "insured_name":
		return &f.InsuredName
	case "insured_tc_number":
		return &f.InsuredTCNumber
	case "insured_address":
		return &f.InsuredAddress
	case "insured_phone":
		return &f.InsuredPhone
	case "vehicle_plate":
		return &f.VehiclePlate
	case "vehicle_brand":
		return &f.VehicleBrand
	case "vehicle_model":
		return &f.VehicleModel
	case "vehicle_year":
		return &f.VehicleYear
	case "vehicle_chassis":
		return &f.VehicleChassis
	case "vehicle_motor":
		return &f.VehicleMotor
	case "vehicle_owner":
		return &f.VehicleOwner
	case "vehicle_value":
		return &f.VehicleValue
	case "insurance_company":
		return &f.InsuranceCompany
	case "company_address":
		return &f.CompanyAddress
	case "company_phone":
		return &f.CompanyPhone
	case "company_tax_id":
		return &f.CompanyTaxID
	case "agent_code":
		return &f.AgentCode
	case "gross_premium":
		return &f.GrossPremium
	case "net_premium":
		return &f.NetPremium
	case "total_amount":
		return &f.TotalAmount
	case "tax_amount":
		return &f.TaxAmount
	case "payment_plan":
		return &f.PaymentPlan
	case "kasko_premium":
		return &f.KaskoPremium
	case "mali_sorumluluk":
		return &f.MaliSorumluluk
	case "ferdi_kaza":
		return &f.FerdiKaza
	case "hukuksal_koruma":
		return &f.HukuksalKoruma
	case "hasarsizlik_orani":
		return &f.HasarsizlikOran
	case "tramer_belge_no":
		return &f.TramerBelgeNo
	case "dask_policy_number":
		return &f.DaskPolicyNumber
	case "building_address":
		return &f.BuildingAddress
	case "building_code":
		return &f.BuildingCode
	case "report_number":
		return &f.ReportNumber
	case "damage_date":
		return &f.DamageDate
	case "damage_location":
		return &f.DamageLocation
	case "spare_parts_cost":
		return &f.SparePartsCost
	case "labor_cost":
		return &f.LaborCost
	case "total_repair_cost":
		return &f.TotalRepair
	case "expert_name":
		return &f.ExpertName
	case "expert_registry":
		return &f.ExpertRegistry
	case "value_loss":
		return &f.ValueLoss
	case "expert_opinion":
		return &f.ExpertOpinion
	default:
		return nil
	}
}
