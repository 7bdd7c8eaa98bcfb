// =============================================================================
// Artifact Engine - Entity Generator Vocabularies
// =============================================================================
//
// Word lists the generator draws from. Realism matters only to the point of
// plausibility: descriptions must look like the text found on real documents
// so extraction systems are exercised on representative strings, but no list
// here feeds any arithmetic.
//
// =============================================================================

package entity

// services are invoice line-item descriptions billed by engagement; the
// generator suffixes them with a month name ("Consulting Services - March").
var services = []string{
	"Consulting Services",
	"Web Development",
	"Database Optimization",
	"API Integration",
	"Cloud Hosting",
	"Security Audit",
	"UI/UX Design",
	"Maintenance Retainer",
	"Code Review",
	"Performance Testing",
	"Technical Documentation",
	"DevOps Support",
	"Data Migration",
	"Mobile App Development",
	"System Architecture",
}

// products are invoice line-item descriptions billed per unit.
var products = []string{
	"Software License",
	"Hardware Component",
	"Server Access",
	"Cloud Storage",
	"API Credits",
	"Premium Support",
	"Training Materials",
	"Documentation Package",
	"Development Tools",
	"Monitoring Service",
}

// retailItems are receipt line-item descriptions.
var retailItems = []string{
	"Wholemeal Bread",
	"Semi-Skimmed Milk 2L",
	"Free Range Eggs x12",
	"Cheddar Cheese 400g",
	"Bananas Loose",
	"Chicken Breast Fillets",
	"Basmati Rice 1kg",
	"Penne Pasta 500g",
	"Orange Juice 1L",
	"Ground Coffee 227g",
	"Breakfast Tea x80",
	"Olive Oil 500ml",
	"Tomato Soup 400g",
	"Greek Yogurt 500g",
	"Dark Chocolate Bar",
	"Sparkling Water 6x500ml",
	"Kitchen Roll x2",
	"Washing Up Liquid",
	"Toothpaste 75ml",
	"AA Batteries x4",
	"Birthday Card",
	"Notebook A5",
	"Ballpoint Pens x5",
	"Phone Charging Cable",
}

// debitDescriptions label money leaving a bank account.
var debitDescriptions = []string{
	"CARD PAYMENT TO TESCO STORES",
	"CARD PAYMENT TO SAINSBURYS",
	"DIRECT DEBIT BRITISH GAS",
	"DIRECT DEBIT THAMES WATER",
	"DIRECT DEBIT COUNCIL TAX",
	"STANDING ORDER RENT",
	"CARD PAYMENT TO AMAZON UK",
	"CARD PAYMENT TO TFL TRAVEL",
	"CASH WITHDRAWAL ATM",
	"CARD PAYMENT TO BOOTS",
	"DIRECT DEBIT EE LIMITED",
	"CARD PAYMENT TO GREGGS",
	"CARD PAYMENT TO SHELL",
	"DIRECT DEBIT NETFLIX",
	"CARD PAYMENT TO MARKS AND SPENCER",
	"ONLINE TRANSFER REFERENCE SAVINGS",
}

// creditDescriptions label money entering a bank account.
var creditDescriptions = []string{
	"SALARY PAYMENT",
	"FASTER PAYMENT RECEIVED",
	"BANK GIRO CREDIT",
	"TRANSFER FROM SAVINGS",
	"REFUND CARD PAYMENT",
	"INTEREST PAID",
	"DIVIDEND PAYMENT",
	"CHEQUE DEPOSIT",
}

// companyStems and companySuffixes combine into sender company names.
var companyStems = []string{
	"Ashworth", "Brightwater", "Caldwell", "Dunmore", "Eastgate",
	"Fairfield", "Grayson", "Hollybrook", "Ironside", "Kingsley",
	"Lakeview", "Merriton", "Northfield", "Oakhurst", "Pemberton",
	"Queensway", "Redbourne", "Silverton", "Thornbury", "Westcott",
}

var companySuffixes = []string{
	"Ltd", "Limited", "Solutions Ltd", "Consulting Ltd", "Group Ltd",
	"Services Ltd", "Digital Ltd", "Systems Ltd", "Partners LLP", "& Sons Ltd",
}

// firstNames and lastNames combine into recipient and account-holder names.
var firstNames = []string{
	"James", "Oliver", "Harry", "George", "Thomas", "Charlotte", "Amelia",
	"Olivia", "Emily", "Sophie", "Daniel", "Matthew", "Hannah", "Lucy",
	"Rebecca", "Samuel", "Joseph", "Grace", "Ella", "William",
}

var lastNames = []string{
	"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson",
	"Davies", "Robinson", "Wright", "Thompson", "Evans", "Walker", "White",
	"Roberts", "Green", "Hall", "Wood", "Jackson", "Clarke",
}

// streetNames, streetTypes, towns and postcodeAreas combine into addresses.
var streetNames = []string{
	"High", "Church", "Station", "Victoria", "Mill", "Park", "London",
	"Queens", "Kings", "Bridge", "Orchard", "Windsor", "Albert", "York",
}

var streetTypes = []string{"Street", "Road", "Lane", "Avenue", "Close", "Gardens"}

var towns = []string{
	"Manchester", "Leeds", "Bristol", "Sheffield", "Norwich", "Reading",
	"Exeter", "York", "Cambridge", "Oxford", "Brighton", "Nottingham",
}

var postcodeAreas = []string{"M", "LS", "BS", "S", "NR", "RG", "EX", "YO", "CB", "OX", "BN", "NG"}

// storeNames are receipt-issuing shops.
var storeNames = []string{
	"Corner Grocery", "Daily Essentials", "The Village Store", "Quick Stop Market",
	"Greenfield Foods", "Harbour Convenience", "Parkside Minimart", "Town Square Deli",
}

// paymentMethods are how receipts were settled.
var paymentMethods = []string{"VISA DEBIT", "MASTERCARD", "CASH", "CONTACTLESS", "AMEX"}

// bankNames issue statements.
var bankNames = []string{
	"Albion Bank", "Meridian Bank", "Crowngate Bank", "Harbourside Bank",
	"Northway Building Society", "Stonebridge Bank",
}
