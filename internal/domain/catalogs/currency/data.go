package currency

// Currency constants are ISO 4217 alphabetic codes; the value is the numeric code.
const (
	AED Currency = 784 // United Arab Emirates dirham
	AFN Currency = 971 // Afghan afghani
	ALL Currency = 8   // Albanian lek
	AMD Currency = 51  // Armenian dram
	ANG Currency = 532 // Netherlands Antillean guilder
	AOA Currency = 973 // Angolan kwanza
	ARS Currency = 32  // Argentine peso
	AUD Currency = 36  // Australian dollar
	AWG Currency = 533 // Aruban florin
	AZN Currency = 944 // Azerbaijani manat
	BAM Currency = 977 // Bosnia and Herzegovina convertible mark
	BBD Currency = 52  // Barbados dollar
	BDT Currency = 50  // Bangladeshi taka
	BGN Currency = 975 // Bulgarian lev
	BHD Currency = 48  // Bahraini dinar
	BIF Currency = 108 // Burundian franc
	BMD Currency = 60  // Bermudian dollar
	BND Currency = 96  // Brunei dollar
	BOB Currency = 68  // Boliviano
	BOV Currency = 984 // Bolivian Mvdol
	BRL Currency = 986 // Brazilian real
	BSD Currency = 44  // Bahamian dollar
	BTN Currency = 64  // Bhutanese ngultrum
	BWP Currency = 72  // Botswana pula
	BYN Currency = 933 // Belarusian ruble
	BZD Currency = 84  // Belize dollar
	CAD Currency = 124 // Canadian dollar
	CDF Currency = 976 // Congolese franc
	CHE Currency = 947 // WIR euro
	CHF Currency = 756 // Swiss franc
	CHW Currency = 948 // WIR franc
	CLF Currency = 990 // Unidad de Fomento
	CLP Currency = 152 // Chilean peso
	CNY Currency = 156 // Renminbi
	COP Currency = 170 // Colombian peso
	COU Currency = 970 // Unidad de Valor Real (UVR)
	CRC Currency = 188 // Costa Rican colon
	CUP Currency = 192 // Cuban peso
	CVE Currency = 132 // Cape Verdean escudo
	CZK Currency = 203 // Czech koruna
	DJF Currency = 262 // Djiboutian franc
	DKK Currency = 208 // Danish krone
	DOP Currency = 214 // Dominican peso
	DZD Currency = 12  // Algerian dinar
	EGP Currency = 818 // Egyptian pound
	ERN Currency = 232 // Eritrean nakfa
	ETB Currency = 230 // Ethiopian birr
	EUR Currency = 978 // Euro
	FJD Currency = 242 // Fiji dollar
	FKP Currency = 238 // Falkland Islands pound
	GBP Currency = 826 // Pound sterling
	GEL Currency = 981 // Georgian lari
	GHS Currency = 936 // Ghanaian cedi
	GIP Currency = 292 // Gibraltar pound
	GMD Currency = 270 // Gambian dalasi
	GNF Currency = 324 // Guinean franc
	GTQ Currency = 320 // Guatemalan quetzal
	GYD Currency = 328 // Guyanese dollar
	HKD Currency = 344 // Hong Kong dollar
	HNL Currency = 340 // Honduran lempira
	HTG Currency = 332 // Haitian gourde
	HUF Currency = 348 // Hungarian forint
	IDR Currency = 360 // Indonesian rupiah
	ILS Currency = 376 // Israeli new shekel
	INR Currency = 356 // Indian rupee
	IQD Currency = 368 // Iraqi dinar
	IRR Currency = 364 // Iranian rial
	ISK Currency = 352 // Icelandic króna
	JMD Currency = 388 // Jamaican dollar
	JOD Currency = 400 // Jordanian dinar
	JPY Currency = 392 // Japanese yen
	KES Currency = 404 // Kenyan shilling
	KGS Currency = 417 // Kyrgyzstani som
	KHR Currency = 116 // Cambodian riel
	KMF Currency = 174 // Comoro franc
	KPW Currency = 408 // North Korean won
	KRW Currency = 410 // South Korean won
	KWD Currency = 414 // Kuwaiti dinar
	KYD Currency = 136 // Cayman Islands dollar
	KZT Currency = 398 // Kazakhstani tenge
	LAK Currency = 418 // Lao kip
	LBP Currency = 422 // Lebanese pound
	LKR Currency = 144 // Sri Lankan rupee
	LRD Currency = 430 // Liberian dollar
	LSL Currency = 426 // Lesotho loti
	LYD Currency = 434 // Libyan dinar
	MAD Currency = 504 // Moroccan dirham
	MDL Currency = 498 // Moldovan leu
	MGA Currency = 969 // Malagasy ariary
	MKD Currency = 807 // Macedonian denar
	MMK Currency = 104 // Myanmar kyat
	MNT Currency = 496 // Mongolian tögrög
	MOP Currency = 446 // Macanese pataca
	MRU Currency = 929 // Mauritanian ouguiya
	MUR Currency = 480 // Mauritian rupee
	MVR Currency = 462 // Maldivian rufiyaa
	MWK Currency = 454 // Malawian kwacha
	MXN Currency = 484 // Mexican peso
	MXV Currency = 979 // Mexican Unidad de Inversion (UDI)
	MYR Currency = 458 // Malaysian ringgit
	MZN Currency = 943 // Mozambican metical
	NAD Currency = 516 // Namibian dollar
	NGN Currency = 566 // Nigerian naira
	NIO Currency = 558 // Nicaraguan córdoba
	NOK Currency = 578 // Norwegian krone
	NPR Currency = 524 // Nepalese rupee
	NZD Currency = 554 // New Zealand dollar
	OMR Currency = 512 // Omani rial
	PAB Currency = 590 // Panamanian balboa
	PEN Currency = 604 // Peruvian sol
	PGK Currency = 598 // Papua New Guinean kina
	PHP Currency = 608 // Philippine peso
	PKR Currency = 586 // Pakistani rupee
	PLN Currency = 985 // Polish złoty
	PYG Currency = 600 // Paraguayan guaraní
	QAR Currency = 634 // Qatari riyal
	RON Currency = 946 // Romanian leu
	RSD Currency = 941 // Serbian dinar
	RUB Currency = 643 // Russian ruble
	RWF Currency = 646 // Rwandan franc
	SAR Currency = 682 // Saudi riyal
	SBD Currency = 90  // Solomon Islands dollar
	SCR Currency = 690 // Seychelles rupee
	SDG Currency = 938 // Sudanese pound
	SEK Currency = 752 // Swedish krona
	SGD Currency = 702 // Singapore dollar
	SHP Currency = 654 // Saint Helena pound
	SLE Currency = 925 // Sierra Leonean leone (new leone)
	SLL Currency = 694 // Sierra Leonean leone (old leone)
	SOS Currency = 706 // Somali shilling
	SRD Currency = 968 // Surinamese dollar
	SSP Currency = 728 // South Sudanese pound
	STN Currency = 930 // São Tomé and Príncipe dobra
	SVC Currency = 222 // Salvadoran colón
	SYP Currency = 760 // Syrian pound
	SZL Currency = 748 // Swazi lilangeni
	THB Currency = 764 // Thai baht
	TJS Currency = 972 // Tajikistani somoni
	TMT Currency = 934 // Turkmenistan manat
	TND Currency = 788 // Tunisian dinar
	TOP Currency = 776 // Tongan paʻanga
	TRY Currency = 949 // Turkish lira
	TTD Currency = 780 // Trinidad and Tobago dollar
	TWD Currency = 901 // New Taiwan dollar
	TZS Currency = 834 // Tanzanian shilling
	UAH Currency = 980 // Ukrainian hryvnia
	UGX Currency = 800 // Ugandan shilling
	USD Currency = 840 // United States dollar
	USN Currency = 997 // United States dollar (next day)
	UYI Currency = 940 // Uruguay Peso en Unidades Indexadas (URUIURUI)
	UYU Currency = 858 // Uruguayan peso
	UYW Currency = 927 // Unidad previsional
	UZS Currency = 860 // Uzbekistan sum
	VED Currency = 926 // Venezuelan digital bolívar
	VES Currency = 928 // Venezuelan sovereign bolívar
	VND Currency = 704 // Vietnamese đồng
	VUV Currency = 548 // Vanuatu vatu
	WST Currency = 882 // Samoan tala
	XAF Currency = 950 // CFA franc BEAC
	XAG Currency = 961 // Silver (one troy ounce)
	XAU Currency = 959 // Gold (one troy ounce)
	XBA Currency = 955 // European Composite Unit (EURCO)
	XBB Currency = 956 // European Monetary Unit (E.M.U.-6)
	XBC Currency = 957 // European Unit of Account 9 (E.U.A.-9)
	XBD Currency = 958 // European Unit of Account 17 (E.U.A.-17)
	XCD Currency = 951 // East Caribbean dollar
	XDR Currency = 960 // Special drawing rights
	XOF Currency = 952 // CFA franc BCEAO
	XPD Currency = 964 // Palladium (one troy ounce)
	XPF Currency = 953 // CFP franc (franc Pacifique)
	XPT Currency = 962 // Platinum (one troy ounce)
	XSU Currency = 994 // SUCRE
	XTS Currency = 963 // Code reserved for testing
	XUA Currency = 965 // ADB Unit of Account
	XXX Currency = 999 // No currency
	YER Currency = 886 // Yemeni rial
	ZAR Currency = 710 // South African rand
	ZMW Currency = 967 // Zambian kwacha
	ZWL Currency = 932 // Zimbabwean dollar (fifth)
)

var catalogue = [...]info{
	{AED, "AED", "United Arab Emirates dirham", 2},
	{AFN, "AFN", "Afghan afghani", 2},
	{ALL, "ALL", "Albanian lek", 2},
	{AMD, "AMD", "Armenian dram", 2},
	{ANG, "ANG", "Netherlands Antillean guilder", 2},
	{AOA, "AOA", "Angolan kwanza", 2},
	{ARS, "ARS", "Argentine peso", 2},
	{AUD, "AUD", "Australian dollar", 2},
	{AWG, "AWG", "Aruban florin", 2},
	{AZN, "AZN", "Azerbaijani manat", 2},
	{BAM, "BAM", "Bosnia and Herzegovina convertible mark", 2},
	{BBD, "BBD", "Barbados dollar", 2},
	{BDT, "BDT", "Bangladeshi taka", 2},
	{BGN, "BGN", "Bulgarian lev", 2},
	{BHD, "BHD", "Bahraini dinar", 3},
	{BIF, "BIF", "Burundian franc", 0},
	{BMD, "BMD", "Bermudian dollar", 2},
	{BND, "BND", "Brunei dollar", 2},
	{BOB, "BOB", "Boliviano", 2},
	{BOV, "BOV", "Bolivian Mvdol", 2},
	{BRL, "BRL", "Brazilian real", 2},
	{BSD, "BSD", "Bahamian dollar", 2},
	{BTN, "BTN", "Bhutanese ngultrum", 2},
	{BWP, "BWP", "Botswana pula", 2},
	{BYN, "BYN", "Belarusian ruble", 2},
	{BZD, "BZD", "Belize dollar", 2},
	{CAD, "CAD", "Canadian dollar", 2},
	{CDF, "CDF", "Congolese franc", 2},
	{CHE, "CHE", "WIR euro", 2},
	{CHF, "CHF", "Swiss franc", 2},
	{CHW, "CHW", "WIR franc", 2},
	{CLF, "CLF", "Unidad de Fomento", 4},
	{CLP, "CLP", "Chilean peso", 0},
	{CNY, "CNY", "Renminbi", 2},
	{COP, "COP", "Colombian peso", 2},
	{COU, "COU", "Unidad de Valor Real (UVR)", 2},
	{CRC, "CRC", "Costa Rican colon", 2},
	{CUP, "CUP", "Cuban peso", 2},
	{CVE, "CVE", "Cape Verdean escudo", 2},
	{CZK, "CZK", "Czech koruna", 2},
	{DJF, "DJF", "Djiboutian franc", 0},
	{DKK, "DKK", "Danish krone", 2},
	{DOP, "DOP", "Dominican peso", 2},
	{DZD, "DZD", "Algerian dinar", 2},
	{EGP, "EGP", "Egyptian pound", 2},
	{ERN, "ERN", "Eritrean nakfa", 2},
	{ETB, "ETB", "Ethiopian birr", 2},
	{EUR, "EUR", "Euro", 2},
	{FJD, "FJD", "Fiji dollar", 2},
	{FKP, "FKP", "Falkland Islands pound", 2},
	{GBP, "GBP", "Pound sterling", 2},
	{GEL, "GEL", "Georgian lari", 2},
	{GHS, "GHS", "Ghanaian cedi", 2},
	{GIP, "GIP", "Gibraltar pound", 2},
	{GMD, "GMD", "Gambian dalasi", 2},
	{GNF, "GNF", "Guinean franc", 0},
	{GTQ, "GTQ", "Guatemalan quetzal", 2},
	{GYD, "GYD", "Guyanese dollar", 2},
	{HKD, "HKD", "Hong Kong dollar", 2},
	{HNL, "HNL", "Honduran lempira", 2},
	{HTG, "HTG", "Haitian gourde", 2},
	{HUF, "HUF", "Hungarian forint", 2},
	{IDR, "IDR", "Indonesian rupiah", 2},
	{ILS, "ILS", "Israeli new shekel", 2},
	{INR, "INR", "Indian rupee", 2},
	{IQD, "IQD", "Iraqi dinar", 3},
	{IRR, "IRR", "Iranian rial", 2},
	{ISK, "ISK", "Icelandic króna", 0},
	{JMD, "JMD", "Jamaican dollar", 2},
	{JOD, "JOD", "Jordanian dinar", 3},
	{JPY, "JPY", "Japanese yen", 0},
	{KES, "KES", "Kenyan shilling", 2},
	{KGS, "KGS", "Kyrgyzstani som", 2},
	{KHR, "KHR", "Cambodian riel", 2},
	{KMF, "KMF", "Comoro franc", 0},
	{KPW, "KPW", "North Korean won", 2},
	{KRW, "KRW", "South Korean won", 0},
	{KWD, "KWD", "Kuwaiti dinar", 3},
	{KYD, "KYD", "Cayman Islands dollar", 2},
	{KZT, "KZT", "Kazakhstani tenge", 2},
	{LAK, "LAK", "Lao kip", 2},
	{LBP, "LBP", "Lebanese pound", 2},
	{LKR, "LKR", "Sri Lankan rupee", 2},
	{LRD, "LRD", "Liberian dollar", 2},
	{LSL, "LSL", "Lesotho loti", 2},
	{LYD, "LYD", "Libyan dinar", 3},
	{MAD, "MAD", "Moroccan dirham", 2},
	{MDL, "MDL", "Moldovan leu", 2},
	{MGA, "MGA", "Malagasy ariary", 2},
	{MKD, "MKD", "Macedonian denar", 2},
	{MMK, "MMK", "Myanmar kyat", 2},
	{MNT, "MNT", "Mongolian tögrög", 2},
	{MOP, "MOP", "Macanese pataca", 2},
	{MRU, "MRU", "Mauritanian ouguiya", 2},
	{MUR, "MUR", "Mauritian rupee", 2},
	{MVR, "MVR", "Maldivian rufiyaa", 2},
	{MWK, "MWK", "Malawian kwacha", 2},
	{MXN, "MXN", "Mexican peso", 2},
	{MXV, "MXV", "Mexican Unidad de Inversion (UDI)", 2},
	{MYR, "MYR", "Malaysian ringgit", 2},
	{MZN, "MZN", "Mozambican metical", 2},
	{NAD, "NAD", "Namibian dollar", 2},
	{NGN, "NGN", "Nigerian naira", 2},
	{NIO, "NIO", "Nicaraguan córdoba", 2},
	{NOK, "NOK", "Norwegian krone", 2},
	{NPR, "NPR", "Nepalese rupee", 2},
	{NZD, "NZD", "New Zealand dollar", 2},
	{OMR, "OMR", "Omani rial", 3},
	{PAB, "PAB", "Panamanian balboa", 2},
	{PEN, "PEN", "Peruvian sol", 2},
	{PGK, "PGK", "Papua New Guinean kina", 2},
	{PHP, "PHP", "Philippine peso", 2},
	{PKR, "PKR", "Pakistani rupee", 2},
	{PLN, "PLN", "Polish złoty", 2},
	{PYG, "PYG", "Paraguayan guaraní", 0},
	{QAR, "QAR", "Qatari riyal", 2},
	{RON, "RON", "Romanian leu", 2},
	{RSD, "RSD", "Serbian dinar", 2},
	{RUB, "RUB", "Russian ruble", 2},
	{RWF, "RWF", "Rwandan franc", 0},
	{SAR, "SAR", "Saudi riyal", 2},
	{SBD, "SBD", "Solomon Islands dollar", 2},
	{SCR, "SCR", "Seychelles rupee", 2},
	{SDG, "SDG", "Sudanese pound", 2},
	{SEK, "SEK", "Swedish krona", 2},
	{SGD, "SGD", "Singapore dollar", 2},
	{SHP, "SHP", "Saint Helena pound", 2},
	{SLE, "SLE", "Sierra Leonean leone (new leone)", 2},
	{SLL, "SLL", "Sierra Leonean leone (old leone)", 2},
	{SOS, "SOS", "Somali shilling", 2},
	{SRD, "SRD", "Surinamese dollar", 2},
	{SSP, "SSP", "South Sudanese pound", 2},
	{STN, "STN", "São Tomé and Príncipe dobra", 2},
	{SVC, "SVC", "Salvadoran colón", 2},
	{SYP, "SYP", "Syrian pound", 2},
	{SZL, "SZL", "Swazi lilangeni", 2},
	{THB, "THB", "Thai baht", 2},
	{TJS, "TJS", "Tajikistani somoni", 2},
	{TMT, "TMT", "Turkmenistan manat", 2},
	{TND, "TND", "Tunisian dinar", 3},
	{TOP, "TOP", "Tongan paʻanga", 2},
	{TRY, "TRY", "Turkish lira", 2},
	{TTD, "TTD", "Trinidad and Tobago dollar", 2},
	{TWD, "TWD", "New Taiwan dollar", 2},
	{TZS, "TZS", "Tanzanian shilling", 2},
	{UAH, "UAH", "Ukrainian hryvnia", 2},
	{UGX, "UGX", "Ugandan shilling", 0},
	{USD, "USD", "United States dollar", 2},
	{USN, "USN", "United States dollar (next day)", 2},
	{UYI, "UYI", "Uruguay Peso en Unidades Indexadas (URUIURUI)", 0},
	{UYU, "UYU", "Uruguayan peso", 2},
	{UYW, "UYW", "Unidad previsional", 4},
	{UZS, "UZS", "Uzbekistan sum", 2},
	{VED, "VED", "Venezuelan digital bolívar", 2},
	{VES, "VES", "Venezuelan sovereign bolívar", 2},
	{VND, "VND", "Vietnamese đồng", 0},
	{VUV, "VUV", "Vanuatu vatu", 0},
	{WST, "WST", "Samoan tala", 2},
	{XAF, "XAF", "CFA franc BEAC", 0},
	{XAG, "XAG", "Silver (one troy ounce)", 0},
	{XAU, "XAU", "Gold (one troy ounce)", 0},
	{XBA, "XBA", "European Composite Unit (EURCO)", 0},
	{XBB, "XBB", "European Monetary Unit (E.M.U.-6)", 0},
	{XBC, "XBC", "European Unit of Account 9 (E.U.A.-9)", 0},
	{XBD, "XBD", "European Unit of Account 17 (E.U.A.-17)", 0},
	{XCD, "XCD", "East Caribbean dollar", 2},
	{XDR, "XDR", "Special drawing rights", 0},
	{XOF, "XOF", "CFA franc BCEAO", 0},
	{XPD, "XPD", "Palladium (one troy ounce)", 0},
	{XPF, "XPF", "CFP franc (franc Pacifique)", 0},
	{XPT, "XPT", "Platinum (one troy ounce)", 0},
	{XSU, "XSU", "SUCRE", 0},
	{XTS, "XTS", "Code reserved for testing", 0},
	{XUA, "XUA", "ADB Unit of Account", 0},
	{XXX, "XXX", "No currency", 0},
	{YER, "YER", "Yemeni rial", 2},
	{ZAR, "ZAR", "South African rand", 2},
	{ZMW, "ZMW", "Zambian kwacha", 2},
	{ZWL, "ZWL", "Zimbabwean dollar (fifth)", 2},
}
