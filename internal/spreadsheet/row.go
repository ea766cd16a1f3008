package spreadsheet

// Column is a header name of the hospital directory sheet
type Column string

const (
	ColSerialNumber        Column = "Sr_No"
	ColName                Column = "Hospital_Name"
	ColCategory            Column = "Hospital_Category"
	ColDiscipline          Column = "Discipline_Systems_of_Medicine"
	ColAddress             Column = "Address_Original_First_Line"
	ColState               Column = "State"
	ColDistrict            Column = "District"
	ColPostalCode          Column = "Pincode"
	ColTelephone           Column = "Telephone"
	ColEmergencyNumber     Column = "Emergency_Num"
	ColBloodBankPhone      Column = "Bloodbank_Phone_No"
	ColEmail               Column = "Hospital_Primary_Email_Id"
	ColWebsite             Column = "Website"
	ColSpecialties         Column = "Specialties"
	ColFacilities          Column = "Facilities"
	ColAccreditation       Column = "Accreditation"
	ColAyush               Column = "Ayush"
	ColTotalBeds           Column = "Total_Num_Beds"
	ColAvailableBeds       Column = "Available_Beds"
	ColPrivateWards        Column = "Number_Private_Wards"
	ColLocationCoordinates Column = "Location_Coordinates"
	ColDormitoryEntry      Column = "Dormentry"
)

// Row is one data row of a sheet.
// Number is the 1-based row number in the sheet, header included.
type Row struct {
	Number int
	Cells  map[Column]string
}

// NewRow builds a row from column/value pairs
func NewRow(number int, cells map[Column]string) Row {
	if cells == nil {
		cells = map[Column]string{}
	}
	return Row{Number: number, Cells: cells}
}

// Get returns the cell text and whether it is present and non-empty
func (r Row) Get(col Column) (string, bool) {
	v, ok := r.Cells[col]
	return v, ok && v != ""
}
