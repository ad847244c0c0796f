package seeders

var teamsData = []string{
	"Mechanics",
	"Electricians",
	"IT Support",
}

var equipmentData = []struct {
	Name         string
	SerialNumber string
	Category     string
	Location     string
	TeamName     string
}{
	{Name: "CNC Lathe", SerialNumber: "CNC-LT-0001", Category: "Production", Location: "Workshop A", TeamName: "Mechanics"},
	{Name: "Hydraulic Press", SerialNumber: "HYD-PR-0002", Category: "Production", Location: "Workshop A", TeamName: "Mechanics"},
	{Name: "Forklift", SerialNumber: "FL-0003", Category: "Logistics", Location: "Warehouse", TeamName: "Mechanics"},
	{Name: "Backup Generator", SerialNumber: "GEN-0004", Category: "Power", Location: "Utility Room", TeamName: "Electricians"},
	{Name: "Main Switchboard", SerialNumber: "SWB-0005", Category: "Power", Location: "Utility Room", TeamName: "Electricians"},
	{Name: "Office Printer", SerialNumber: "PRN-0006", Category: "Office", Location: "2nd Floor", TeamName: "IT Support"},
	{Name: "File Server", SerialNumber: "SRV-0007", Category: "IT", Location: "Server Room", TeamName: "IT Support"},
	{Name: "Air Compressor", SerialNumber: "AC-0008", Category: "Production", Location: "Workshop B", TeamName: ""},
}
