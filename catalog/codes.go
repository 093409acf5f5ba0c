package catalog

import "regexp"

// Field names the default patterns store their captures under. The builder
// resolves totals from these, so callers registering replacement patterns
// should reuse the same names.
const (
	FieldName          = "name"
	FieldAccountNumber = "accountNumber"
	FieldPANNumber     = "panNumber"

	FieldGrossPay          = "grossPay"
	FieldTotalDeductions   = "totalDeductions"
	FieldNetRemittance     = "netRemittance"
	FieldDSOP              = "dsop"
	FieldDSOPSubscription  = "dsopSubscription"
	FieldDSOPTotal         = "dsopTotal"
	FieldITax              = "itax"
	FieldIncomeTaxDeducted = "incomeTaxDeducted"
	FieldTaxTotal          = "taxTotal"

	FieldStatementPeriod = "statementPeriod"
	FieldMonth           = "month"
	FieldYear            = "year"

	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldWebsite = "website"
)

const amount = `(?:Rs\.?|INR|₹)?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`

func defaultPatterns() map[Group][]PatternEntry {
	mk := func(name, expr string) PatternEntry {
		return PatternEntry{Name: name, Regex: regexp.MustCompile(expr)}
	}

	return map[Group][]PatternEntry{
		GroupPersonal: {
			mk(FieldName, `(?i)Name\s*:?\s+([A-Z][A-Za-z]+(?:\s[A-Z][A-Za-z]+){0,3})`),
			mk(FieldAccountNumber, `(?i)A/?C(?:COUNT)?\s*No\.?\s*:?\s*-?\s*([0-9][0-9A-Z/\-]{5,20})`),
			mk(FieldPANNumber, `(?i)PAN\s*(?:No\.?|Number)?\s*:?\s*([A-Z]{5}[0-9]{4}[A-Z])`),
		},
		GroupFinancial: {
			mk(FieldGrossPay, `(?i)(?:Gross\s*Pay|Total\s*Credits?|कुल आय)\s*:?\s*`+amount),
			mk(FieldTotalDeductions, `(?i)(?:Total\s*Deductions?|Total\s*Debits?|कुल कटौती)\s*:?\s*`+amount),
			mk(FieldNetRemittance, `(?i)Net\s*(?:Remittance|Amount|Pay(?:ment)?)\s*:?\s*`+amount),
			mk(FieldDSOP, `(?i)\bDSOP(?:\s*Fund)?\s*:?\s+`+amount),
			mk(FieldDSOPSubscription, `(?i)DSOP\s*Subscription\s*:?\s*`+amount),
			mk(FieldDSOPTotal, `(?i)Total\s*DSOP(?:\s*Fund)?\s*:?\s*`+amount),
			mk(FieldITax, `(?i)\bITAX\s*:?\s+`+amount),
			mk(FieldIncomeTaxDeducted, `(?i)Income\s*Tax\s*Deducted\s*:?\s*`+amount),
			mk(FieldTaxTotal, `(?i)Total\s*(?:Income\s*)?Tax\s*:?\s*`+amount),
		},
		GroupEarnings: {
			mk("basicPay", `(?i)\bBPAY\s*:?\s+`+amount),
			mk("da", `(?i)\bDA\s*:?\s+`+amount),
			mk("msp", `(?i)\bMSP\s*:?\s+`+amount),
			mk("hra", `(?i)\bHRA\s*:?\s+`+amount),
			mk("tpta", `(?i)\bTPTA\s*:?\s+`+amount),
		},
		GroupDeductions: {
			mk("agif", `(?i)\bAGIF\s*:?\s+`+amount),
			mk("cghs", `(?i)\bCGHS\s*:?\s+`+amount),
			mk("cgeis", `(?i)\bCGEIS\s*:?\s+`+amount),
			mk("licenseFee", `(?i)\bL\s*Fee\s*:?\s+`+amount),
		},
		GroupDate: {
			mk(FieldStatementPeriod, `(?i)(?:Statement|Pay)\s*(?:Period|Month)\s*(?:for)?\s*:?\s*([A-Za-z0-9/\- ]*?[0-9]{4})`),
			mk(FieldMonth, `(?i)\bMonth\s*:?\s*([A-Za-z]+)`),
			mk(FieldYear, `(?i)\bYear\s*:?\s*([0-9]{4})`),
		},
		GroupContact: {
			mk(FieldEmail, `([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`),
			mk(FieldPhone, `(?i)(?:Tele?|Phone|Contact)\s*(?:No\.?)?\s*:?\s*([0-9][0-9 \-]{7,14}[0-9])`),
			mk(FieldWebsite, `(?i)\b((?:https?://|www\.)[^\s]+)`),
		},
	}
}

// Standard abbreviations seen on defence payslips. Membership decides
// classification ahead of any keyword heuristic.
var standardEarningsCodes = []string{
	"BPAY", "BASIC", "PAY", "DA", "DP", "MSP", "HRA", "TPTA", "TPTADA",
	"CEA", "CLA", "TA", "RH12", "RSHNA", "WASHIA", "OUTFITA", "SPCDO",
	"DEPUTA", "HAUTA", "SICHA", "ARR",
}

var standardDeductionsCodes = []string{
	"DSOP", "AGIF", "ITAX", "CGHS", "CGEIS", "SBI", "PLI", "PLIA",
	"AFNB", "AOBA", "AWHO", "AFPP", "FUR", "WATER", "ELEC", "RENT",
	"LF", "EHCESS", "EDCESS", "SURCH", "BARRACK", "DEDN",
}

// Tokens that look like row codes but never are: section headers, column
// labels, roman numerals, administrative abbreviations.
var globalBlacklist = []string{
	"EARNINGS", "EARNING", "DEDUCTIONS", "DEDUCTION", "DESCRIPTION",
	"AMOUNT", "TOTAL", "GROSS", "NET", "STATEMENT", "PERIOD", "ACCOUNT",
	"PAN", "NAME", "RANK", "UNIT", "BANK", "IFSC", "BRANCH", "PAGE",
	"DATE", "MONTH", "YEAR", "SL", "NO", "CDA", "PCDA", "CONTACT",
	"CREDITS", "DEBITS", "REMITTANCE",
	"II", "III", "IV", "VI", "VII", "VIII", "IX", "XI", "XII",
}

// Codes valid on a payslip but forbidden in one scan context, e.g. a
// recovery row bleeding into an earnings-section scan.
var contextBlacklists = map[Context][]string{
	ContextEarnings:   {"DEDN", "RECOVERY", "LOAN", "ADVANCE"},
	ContextDeductions: {"BONUS", "AWARD"},
}
