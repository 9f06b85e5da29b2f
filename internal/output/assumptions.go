package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Amounts are in 万円 (10,000 JPY), nominal, not inflation adjusted",
	"Income tax: current progressive brackets with the 2.1% reconstruction surtax; resident tax 10%",
	"Retirement income deduction: 40万円 per service year up to 20 years (minimum 80万円), 70万円 per year beyond; half of the excess is taxed",
	"Receipts within 20 years of an earlier lump sum (10 years when severance follows a DC/iDeCo lump sum) lose the deduction for overlapping years",
	"Public pension deduction: 60万円 minimum before 65, 110万円 from 65; basic allowance 48万円",
	"Public pension: employees' pension at 5.481/1000 per month of service plus basic pension of 81.6万円 for 40 years, paid from 65",
	"DC and iDeCo balances grow monthly at the assumed return; pensions are level annual payments until the end age",
}
