package ledger

import "fmt"

// Group is the Tally parent group a ledger is created under.
type Group string

const (
	GroupSundryCreditors  Group = "Sundry Creditors"
	GroupPurchaseAccounts Group = "Purchase Accounts"
	GroupDutiesAndTaxes   Group = "Duties & Taxes"
	GroupIndirectExpenses Group = "Indirect Expenses"
)

// DutyHead is the GST duty head of a tax ledger.
type DutyHead string

const (
	DutyHeadNone       DutyHead = ""
	DutyHeadIntegrated DutyHead = "Integrated Tax"
	DutyHeadCentral    DutyHead = "Central Tax"
	DutyHeadState      DutyHead = "State Tax"
)

// RoundOff absorbs the residue between an invoice's stated total and the sum
// of its components.
const RoundOff = "Round Off"

// Account is a ledger master. Accounts are identified by Name.
type Account struct {
	Name     string
	Group    Group
	BillWise bool
	GST      bool
	DutyHead DutyHead
}

func InterstatePurchase(rate int) string { return fmt.Sprintf("Interstate Purchase %d%%", rate) }
func LocalPurchase(rate int) string      { return fmt.Sprintf("Local Purchase %d%%", rate) }
func InputIGST(rate int) string          { return fmt.Sprintf("Input IGST %d%%", rate) }

// InputCGST and InputSGST take the combined local rate and label the ledger
// with HalfRate of it.
func InputCGST(rate int) string { return fmt.Sprintf("Input CGST %d%%", HalfRate(rate)) }
func InputSGST(rate int) string { return fmt.Sprintf("Input SGST %d%%", HalfRate(rate)) }

// HalfRate splits a combined CGST+SGST rate with floor division, so an odd
// rate of 17 yields 8 for each half.
func HalfRate(rate int) int {
	q := rate / 2
	if rate%2 != 0 && rate < 0 {
		q--
	}

	return q
}

func creditor(name string) Account {
	return Account{Name: name, Group: GroupSundryCreditors, BillWise: true}
}

func purchase(name string) Account {
	return Account{Name: name, Group: GroupPurchaseAccounts}
}

func tax(name string, head DutyHead) Account {
	return Account{Name: name, Group: GroupDutiesAndTaxes, GST: true, DutyHead: head}
}
