package country

// Country constants are ISO 3166-1 alpha-2 codes; the value is the numeric code.
const (
	AD Country = 20  // Andorra
	AE Country = 784 // United Arab Emirates
	AF Country = 4   // Afghanistan
	AG Country = 28  // Antigua and Barbuda
	AI Country = 660 // Anguilla
	AL Country = 8   // Albania
	AM Country = 51  // Armenia
	AO Country = 24  // Angola
	AQ Country = 10  // Antarctica
	AR Country = 32  // Argentina
	AS Country = 16  // American Samoa
	AT Country = 40  // Austria
	AU Country = 36  // Australia
	AW Country = 533 // Aruba
	AX Country = 248 // Åland Islands
	AZ Country = 31  // Azerbaijan
	BA Country = 70  // Bosnia and Herzegovina
	BB Country = 52  // Barbados
	BD Country = 50  // Bangladesh
	BE Country = 56  // Belgium
	BF Country = 854 // Burkina Faso
	BG Country = 100 // Bulgaria
	BH Country = 48  // Bahrain
	BI Country = 108 // Burundi
	BJ Country = 204 // Benin
	BL Country = 652 // Saint Barthélemy
	BM Country = 60  // Bermuda
	BN Country = 96  // Brunei Darussalam
	BO Country = 68  // Bolivia (Plurinational State of)
	BQ Country = 535 // Bonaire, Sint Eustatius and Saba
	BR Country = 76  // Brazil
	BS Country = 44  // Bahamas
	BT Country = 64  // Bhutan
	BV Country = 74  // Bouvet Island
	BW Country = 72  // Botswana
	BY Country = 112 // Belarus
	BZ Country = 84  // Belize
	CA Country = 124 // Canada
	CC Country = 166 // Cocos (Keeling) Islands
	CD Country = 180 // Congo, Democratic Republic of the
	CF Country = 140 // Central African Republic
	CG Country = 178 // Congo
	CH Country = 756 // Switzerland
	CI Country = 384 // Côte d'Ivoire
	CK Country = 184 // Cook Islands
	CL Country = 152 // Chile
	CM Country = 120 // Cameroon
	CN Country = 156 // China
	CO Country = 170 // Colombia
	CR Country = 188 // Costa Rica
	CU Country = 192 // Cuba
	CV Country = 132 // Cabo Verde
	CW Country = 531 // Curaçao
	CX Country = 162 // Christmas Island
	CY Country = 196 // Cyprus
	CZ Country = 203 // Czechia
	DE Country = 276 // Germany
	DJ Country = 262 // Djibouti
	DK Country = 208 // Denmark
	DM Country = 212 // Dominica
	DO Country = 214 // Dominican Republic
	DZ Country = 12  // Algeria
	EC Country = 218 // Ecuador
	EE Country = 233 // Estonia
	EG Country = 818 // Egypt
	EH Country = 732 // Western Sahara
	ER Country = 232 // Eritrea
	ES Country = 724 // Spain
	ET Country = 231 // Ethiopia
	FI Country = 246 // Finland
	FJ Country = 242 // Fiji
	FK Country = 238 // Falkland Islands (Malvinas)
	FM Country = 583 // Micronesia (Federated States of)
	FO Country = 234 // Faroe Islands
	FR Country = 250 // France
	GA Country = 266 // Gabon
	GB Country = 826 // United Kingdom of Great Britain and Northern Ireland
	GD Country = 308 // Grenada
	GE Country = 268 // Georgia
	GF Country = 254 // French Guiana
	GG Country = 831 // Guernsey
	GH Country = 288 // Ghana
	GI Country = 292 // Gibraltar
	GL Country = 304 // Greenland
	GM Country = 270 // Gambia
	GN Country = 324 // Guinea
	GP Country = 312 // Guadeloupe
	GQ Country = 226 // Equatorial Guinea
	GR Country = 300 // Greece
	GS Country = 239 // South Georgia and the South Sandwich Islands
	GT Country = 320 // Guatemala
	GU Country = 316 // Guam
	GW Country = 624 // Guinea-Bissau
	GY Country = 328 // Guyana
	HK Country = 344 // Hong Kong
	HM Country = 334 // Heard Island and McDonald Islands
	HN Country = 340 // Honduras
	HR Country = 191 // Croatia
	HT Country = 332 // Haiti
	HU Country = 348 // Hungary
	ID Country = 360 // Indonesia
	IE Country = 372 // Ireland
	IL Country = 376 // Israel
	IM Country = 833 // Isle of Man
	IN Country = 356 // India
	IO Country = 86  // British Indian Ocean Territory
	IQ Country = 368 // Iraq
	IR Country = 364 // Iran (Islamic Republic of)
	IS Country = 352 // Iceland
	IT Country = 380 // Italy
	JE Country = 832 // Jersey
	JM Country = 388 // Jamaica
	JO Country = 400 // Jordan
	JP Country = 392 // Japan
	KE Country = 404 // Kenya
	KG Country = 417 // Kyrgyzstan
	KH Country = 116 // Cambodia
	KI Country = 296 // Kiribati
	KM Country = 174 // Comoros
	KN Country = 659 // Saint Kitts and Nevis
	KP Country = 408 // Korea (Democratic People's Republic of)
	KR Country = 410 // Korea, Republic of
	KW Country = 414 // Kuwait
	KY Country = 136 // Cayman Islands
	KZ Country = 398 // Kazakhstan
	LA Country = 418 // Lao People's Democratic Republic
	LB Country = 422 // Lebanon
	LC Country = 662 // Saint Lucia
	LI Country = 438 // Liechtenstein
	LK Country = 144 // Sri Lanka
	LR Country = 430 // Liberia
	LS Country = 426 // Lesotho
	LT Country = 440 // Lithuania
	LU Country = 442 // Luxembourg
	LV Country = 428 // Latvia
	LY Country = 434 // Libya
	MA Country = 504 // Morocco
	MC Country = 492 // Monaco
	MD Country = 498 // Moldova, Republic of
	ME Country = 499 // Montenegro
	MF Country = 663 // Saint Martin (French part)
	MG Country = 450 // Madagascar
	MH Country = 584 // Marshall Islands
	MK Country = 807 // North Macedonia
	ML Country = 466 // Mali
	MM Country = 104 // Myanmar
	MN Country = 496 // Mongolia
	MO Country = 446 // Macao
	MP Country = 580 // Northern Mariana Islands
	MQ Country = 474 // Martinique
	MR Country = 478 // Mauritania
	MS Country = 500 // Montserrat
	MT Country = 470 // Malta
	MU Country = 480 // Mauritius
	MV Country = 462 // Maldives
	MW Country = 454 // Malawi
	MX Country = 484 // Mexico
	MY Country = 458 // Malaysia
	MZ Country = 508 // Mozambique
	NA Country = 516 // Namibia
	NC Country = 540 // New Caledonia
	NE Country = 562 // Niger
	NF Country = 574 // Norfolk Island
	NG Country = 566 // Nigeria
	NI Country = 558 // Nicaragua
	NL Country = 528 // Netherlands, Kingdom of the
	NO Country = 578 // Norway
	NP Country = 524 // Nepal
	NR Country = 520 // Nauru
	NU Country = 570 // Niue
	NZ Country = 554 // New Zealand
	OM Country = 512 // Oman
	PA Country = 591 // Panama
	PE Country = 604 // Peru
	PF Country = 258 // French Polynesia
	PG Country = 598 // Papua New Guinea
	PH Country = 608 // Philippines
	PK Country = 586 // Pakistan
	PL Country = 616 // Poland
	PM Country = 666 // Saint Pierre and Miquelon
	PN Country = 612 // Pitcairn
	PR Country = 630 // Puerto Rico
	PS Country = 275 // Palestine, State of
	PT Country = 620 // Portugal
	PW Country = 585 // Palau
	PY Country = 600 // Paraguay
	QA Country = 634 // Qatar
	RE Country = 638 // Réunion
	RO Country = 642 // Romania
	RS Country = 688 // Serbia
	RU Country = 643 // Russian Federation
	RW Country = 646 // Rwanda
	SA Country = 682 // Saudi Arabia
	SB Country = 90  // Solomon Islands
	SC Country = 690 // Seychelles
	SD Country = 729 // Sudan
	SE Country = 752 // Sweden
	SG Country = 702 // Singapore
	SH Country = 654 // Saint Helena, Ascension and Tristan da Cunha
	SI Country = 705 // Slovenia
	SJ Country = 744 // Svalbard and Jan Mayen
	SK Country = 703 // Slovakia
	SL Country = 694 // Sierra Leone
	SM Country = 674 // San Marino
	SN Country = 686 // Senegal
	SO Country = 706 // Somalia
	SR Country = 740 // Suriname
	SS Country = 728 // South Sudan
	ST Country = 678 // Sao Tome and Principe
	SV Country = 222 // El Salvador
	SX Country = 534 // Sint Maarten (Dutch part)
	SY Country = 760 // Syrian Arab Republic
	SZ Country = 748 // Eswatini
	TC Country = 796 // Turks and Caicos Islands
	TD Country = 148 // Chad
	TF Country = 260 // French Southern Territories
	TG Country = 768 // Togo
	TH Country = 764 // Thailand
	TJ Country = 762 // Tajikistan
	TK Country = 772 // Tokelau
	TL Country = 626 // Timor-Leste
	TM Country = 795 // Turkmenistan
	TN Country = 788 // Tunisia
	TO Country = 776 // Tonga
	TR Country = 792 // Türkiye
	TT Country = 780 // Trinidad and Tobago
	TV Country = 798 // Tuvalu
	TW Country = 158 // Taiwan, Province of China
	TZ Country = 834 // Tanzania, United Republic of
	UA Country = 804 // Ukraine
	UG Country = 800 // Uganda
	UM Country = 581 // United States Minor Outlying Islands
	US Country = 840 // United States of America
	UY Country = 858 // Uruguay
	UZ Country = 860 // Uzbekistan
	VA Country = 336 // Holy See
	VC Country = 670 // Saint Vincent and the Grenadines
	VE Country = 862 // Venezuela (Bolivarian Republic of)
	VG Country = 92  // Virgin Islands (British)
	VI Country = 850 // Virgin Islands (U.S.)
	VN Country = 704 // Viet Nam
	VU Country = 548 // Vanuatu
	WF Country = 876 // Wallis and Futuna
	WS Country = 882 // Samoa
	YE Country = 887 // Yemen
	YT Country = 175 // Mayotte
	ZA Country = 710 // South Africa
	ZM Country = 894 // Zambia
	ZW Country = 716 // Zimbabwe
)

var catalogue = [...]info{
	{AD, "AD", "AND", "Andorra"},
	{AE, "AE", "ARE", "United Arab Emirates"},
	{AF, "AF", "AFG", "Afghanistan"},
	{AG, "AG", "ATG", "Antigua and Barbuda"},
	{AI, "AI", "AIA", "Anguilla"},
	{AL, "AL", "ALB", "Albania"},
	{AM, "AM", "ARM", "Armenia"},
	{AO, "AO", "AGO", "Angola"},
	{AQ, "AQ", "ATA", "Antarctica"},
	{AR, "AR", "ARG", "Argentina"},
	{AS, "AS", "ASM", "American Samoa"},
	{AT, "AT", "AUT", "Austria"},
	{AU, "AU", "AUS", "Australia"},
	{AW, "AW", "ABW", "Aruba"},
	{AX, "AX", "ALA", "Åland Islands"},
	{AZ, "AZ", "AZE", "Azerbaijan"},
	{BA, "BA", "BIH", "Bosnia and Herzegovina"},
	{BB, "BB", "BRB", "Barbados"},
	{BD, "BD", "BGD", "Bangladesh"},
	{BE, "BE", "BEL", "Belgium"},
	{BF, "BF", "BFA", "Burkina Faso"},
	{BG, "BG", "BGR", "Bulgaria"},
	{BH, "BH", "BHR", "Bahrain"},
	{BI, "BI", "BDI", "Burundi"},
	{BJ, "BJ", "BEN", "Benin"},
	{BL, "BL", "BLM", "Saint Barthélemy"},
	{BM, "BM", "BMU", "Bermuda"},
	{BN, "BN", "BRN", "Brunei Darussalam"},
	{BO, "BO", "BOL", "Bolivia (Plurinational State of)"},
	{BQ, "BQ", "BES", "Bonaire, Sint Eustatius and Saba"},
	{BR, "BR", "BRA", "Brazil"},
	{BS, "BS", "BHS", "Bahamas"},
	{BT, "BT", "BTN", "Bhutan"},
	{BV, "BV", "BVT", "Bouvet Island"},
	{BW, "BW", "BWA", "Botswana"},
	{BY, "BY", "BLR", "Belarus"},
	{BZ, "BZ", "BLZ", "Belize"},
	{CA, "CA", "CAN", "Canada"},
	{CC, "CC", "CCK", "Cocos (Keeling) Islands"},
	{CD, "CD", "COD", "Congo, Democratic Republic of the"},
	{CF, "CF", "CAF", "Central African Republic"},
	{CG, "CG", "COG", "Congo"},
	{CH, "CH", "CHE", "Switzerland"},
	{CI, "CI", "CIV", "Côte d'Ivoire"},
	{CK, "CK", "COK", "Cook Islands"},
	{CL, "CL", "CHL", "Chile"},
	{CM, "CM", "CMR", "Cameroon"},
	{CN, "CN", "CHN", "China"},
	{CO, "CO", "COL", "Colombia"},
	{CR, "CR", "CRI", "Costa Rica"},
	{CU, "CU", "CUB", "Cuba"},
	{CV, "CV", "CPV", "Cabo Verde"},
	{CW, "CW", "CUW", "Curaçao"},
	{CX, "CX", "CXR", "Christmas Island"},
	{CY, "CY", "CYP", "Cyprus"},
	{CZ, "CZ", "CZE", "Czechia"},
	{DE, "DE", "DEU", "Germany"},
	{DJ, "DJ", "DJI", "Djibouti"},
	{DK, "DK", "DNK", "Denmark"},
	{DM, "DM", "DMA", "Dominica"},
	{DO, "DO", "DOM", "Dominican Republic"},
	{DZ, "DZ", "DZA", "Algeria"},
	{EC, "EC", "ECU", "Ecuador"},
	{EE, "EE", "EST", "Estonia"},
	{EG, "EG", "EGY", "Egypt"},
	{EH, "EH", "ESH", "Western Sahara"},
	{ER, "ER", "ERI", "Eritrea"},
	{ES, "ES", "ESP", "Spain"},
	{ET, "ET", "ETH", "Ethiopia"},
	{FI, "FI", "FIN", "Finland"},
	{FJ, "FJ", "FJI", "Fiji"},
	{FK, "FK", "FLK", "Falkland Islands (Malvinas)"},
	{FM, "FM", "FSM", "Micronesia (Federated States of)"},
	{FO, "FO", "FRO", "Faroe Islands"},
	{FR, "FR", "FRA", "France"},
	{GA, "GA", "GAB", "Gabon"},
	{GB, "GB", "GBR", "United Kingdom of Great Britain and Northern Ireland"},
	{GD, "GD", "GRD", "Grenada"},
	{GE, "GE", "GEO", "Georgia"},
	{GF, "GF", "GUF", "French Guiana"},
	{GG, "GG", "GGY", "Guernsey"},
	{GH, "GH", "GHA", "Ghana"},
	{GI, "GI", "GIB", "Gibraltar"},
	{GL, "GL", "GRL", "Greenland"},
	{GM, "GM", "GMB", "Gambia"},
	{GN, "GN", "GIN", "Guinea"},
	{GP, "GP", "GLP", "Guadeloupe"},
	{GQ, "GQ", "GNQ", "Equatorial Guinea"},
	{GR, "GR", "GRC", "Greece"},
	{GS, "GS", "SGS", "South Georgia and the South Sandwich Islands"},
	{GT, "GT", "GTM", "Guatemala"},
	{GU, "GU", "GUM", "Guam"},
	{GW, "GW", "GNB", "Guinea-Bissau"},
	{GY, "GY", "GUY", "Guyana"},
	{HK, "HK", "HKG", "Hong Kong"},
	{HM, "HM", "HMD", "Heard Island and McDonald Islands"},
	{HN, "HN", "HND", "Honduras"},
	{HR, "HR", "HRV", "Croatia"},
	{HT, "HT", "HTI", "Haiti"},
	{HU, "HU", "HUN", "Hungary"},
	{ID, "ID", "IDN", "Indonesia"},
	{IE, "IE", "IRL", "Ireland"},
	{IL, "IL", "ISR", "Israel"},
	{IM, "IM", "IMN", "Isle of Man"},
	{IN, "IN", "IND", "India"},
	{IO, "IO", "IOT", "British Indian Ocean Territory"},
	{IQ, "IQ", "IRQ", "Iraq"},
	{IR, "IR", "IRN", "Iran (Islamic Republic of)"},
	{IS, "IS", "ISL", "Iceland"},
	{IT, "IT", "ITA", "Italy"},
	{JE, "JE", "JEY", "Jersey"},
	{JM, "JM", "JAM", "Jamaica"},
	{JO, "JO", "JOR", "Jordan"},
	{JP, "JP", "JPN", "Japan"},
	{KE, "KE", "KEN", "Kenya"},
	{KG, "KG", "KGZ", "Kyrgyzstan"},
	{KH, "KH", "KHM", "Cambodia"},
	{KI, "KI", "KIR", "Kiribati"},
	{KM, "KM", "COM", "Comoros"},
	{KN, "KN", "KNA", "Saint Kitts and Nevis"},
	{KP, "KP", "PRK", "Korea (Democratic People's Republic of)"},
	{KR, "KR", "KOR", "Korea, Republic of"},
	{KW, "KW", "KWT", "Kuwait"},
	{KY, "KY", "CYM", "Cayman Islands"},
	{KZ, "KZ", "KAZ", "Kazakhstan"},
	{LA, "LA", "LAO", "Lao People's Democratic Republic"},
	{LB, "LB", "LBN", "Lebanon"},
	{LC, "LC", "LCA", "Saint Lucia"},
	{LI, "LI", "LIE", "Liechtenstein"},
	{LK, "LK", "LKA", "Sri Lanka"},
	{LR, "LR", "LBR", "Liberia"},
	{LS, "LS", "LSO", "Lesotho"},
	{LT, "LT", "LTU", "Lithuania"},
	{LU, "LU", "LUX", "Luxembourg"},
	{LV, "LV", "LVA", "Latvia"},
	{LY, "LY", "LBY", "Libya"},
	{MA, "MA", "MAR", "Morocco"},
	{MC, "MC", "MCO", "Monaco"},
	{MD, "MD", "MDA", "Moldova, Republic of"},
	{ME, "ME", "MNE", "Montenegro"},
	{MF, "MF", "MAF", "Saint Martin (French part)"},
	{MG, "MG", "MDG", "Madagascar"},
	{MH, "MH", "MHL", "Marshall Islands"},
	{MK, "MK", "MKD", "North Macedonia"},
	{ML, "ML", "MLI", "Mali"},
	{MM, "MM", "MMR", "Myanmar"},
	{MN, "MN", "MNG", "Mongolia"},
	{MO, "MO", "MAC", "Macao"},
	{MP, "MP", "MNP", "Northern Mariana Islands"},
	{MQ, "MQ", "MTQ", "Martinique"},
	{MR, "MR", "MRT", "Mauritania"},
	{MS, "MS", "MSR", "Montserrat"},
	{MT, "MT", "MLT", "Malta"},
	{MU, "MU", "MUS", "Mauritius"},
	{MV, "MV", "MDV", "Maldives"},
	{MW, "MW", "MWI", "Malawi"},
	{MX, "MX", "MEX", "Mexico"},
	{MY, "MY", "MYS", "Malaysia"},
	{MZ, "MZ", "MOZ", "Mozambique"},
	{NA, "NA", "NAM", "Namibia"},
	{NC, "NC", "NCL", "New Caledonia"},
	{NE, "NE", "NER", "Niger"},
	{NF, "NF", "NFK", "Norfolk Island"},
	{NG, "NG", "NGA", "Nigeria"},
	{NI, "NI", "NIC", "Nicaragua"},
	{NL, "NL", "NLD", "Netherlands, Kingdom of the"},
	{NO, "NO", "NOR", "Norway"},
	{NP, "NP", "NPL", "Nepal"},
	{NR, "NR", "NRU", "Nauru"},
	{NU, "NU", "NIU", "Niue"},
	{NZ, "NZ", "NZL", "New Zealand"},
	{OM, "OM", "OMN", "Oman"},
	{PA, "PA", "PAN", "Panama"},
	{PE, "PE", "PER", "Peru"},
	{PF, "PF", "PYF", "French Polynesia"},
	{PG, "PG", "PNG", "Papua New Guinea"},
	{PH, "PH", "PHL", "Philippines"},
	{PK, "PK", "PAK", "Pakistan"},
	{PL, "PL", "POL", "Poland"},
	{PM, "PM", "SPM", "Saint Pierre and Miquelon"},
	{PN, "PN", "PCN", "Pitcairn"},
	{PR, "PR", "PRI", "Puerto Rico"},
	{PS, "PS", "PSE", "Palestine, State of"},
	{PT, "PT", "PRT", "Portugal"},
	{PW, "PW", "PLW", "Palau"},
	{PY, "PY", "PRY", "Paraguay"},
	{QA, "QA", "QAT", "Qatar"},
	{RE, "RE", "REU", "Réunion"},
	{RO, "RO", "ROU", "Romania"},
	{RS, "RS", "SRB", "Serbia"},
	{RU, "RU", "RUS", "Russian Federation"},
	{RW, "RW", "RWA", "Rwanda"},
	{SA, "SA", "SAU", "Saudi Arabia"},
	{SB, "SB", "SLB", "Solomon Islands"},
	{SC, "SC", "SYC", "Seychelles"},
	{SD, "SD", "SDN", "Sudan"},
	{SE, "SE", "SWE", "Sweden"},
	{SG, "SG", "SGP", "Singapore"},
	{SH, "SH", "SHN", "Saint Helena, Ascension and Tristan da Cunha"},
	{SI, "SI", "SVN", "Slovenia"},
	{SJ, "SJ", "SJM", "Svalbard and Jan Mayen"},
	{SK, "SK", "SVK", "Slovakia"},
	{SL, "SL", "SLE", "Sierra Leone"},
	{SM, "SM", "SMR", "San Marino"},
	{SN, "SN", "SEN", "Senegal"},
	{SO, "SO", "SOM", "Somalia"},
	{SR, "SR", "SUR", "Suriname"},
	{SS, "SS", "SSD", "South Sudan"},
	{ST, "ST", "STP", "Sao Tome and Principe"},
	{SV, "SV", "SLV", "El Salvador"},
	{SX, "SX", "SXM", "Sint Maarten (Dutch part)"},
	{SY, "SY", "SYR", "Syrian Arab Republic"},
	{SZ, "SZ", "SWZ", "Eswatini"},
	{TC, "TC", "TCA", "Turks and Caicos Islands"},
	{TD, "TD", "TCD", "Chad"},
	{TF, "TF", "ATF", "French Southern Territories"},
	{TG, "TG", "TGO", "Togo"},
	{TH, "TH", "THA", "Thailand"},
	{TJ, "TJ", "TJK", "Tajikistan"},
	{TK, "TK", "TKL", "Tokelau"},
	{TL, "TL", "TLS", "Timor-Leste"},
	{TM, "TM", "TKM", "Turkmenistan"},
	{TN, "TN", "TUN", "Tunisia"},
	{TO, "TO", "TON", "Tonga"},
	{TR, "TR", "TUR", "Türkiye"},
	{TT, "TT", "TTO", "Trinidad and Tobago"},
	{TV, "TV", "TUV", "Tuvalu"},
	{TW, "TW", "TWN", "Taiwan, Province of China"},
	{TZ, "TZ", "TZA", "Tanzania, United Republic of"},
	{UA, "UA", "UKR", "Ukraine"},
	{UG, "UG", "UGA", "Uganda"},
	{UM, "UM", "UMI", "United States Minor Outlying Islands"},
	{US, "US", "USA", "United States of America"},
	{UY, "UY", "URY", "Uruguay"},
	{UZ, "UZ", "UZB", "Uzbekistan"},
	{VA, "VA", "VAT", "Holy See"},
	{VC, "VC", "VCT", "Saint Vincent and the Grenadines"},
	{VE, "VE", "VEN", "Venezuela (Bolivarian Republic of)"},
	{VG, "VG", "VGB", "Virgin Islands (British)"},
	{VI, "VI", "VIR", "Virgin Islands (U.S.)"},
	{VN, "VN", "VNM", "Viet Nam"},
	{VU, "VU", "VUT", "Vanuatu"},
	{WF, "WF", "WLF", "Wallis and Futuna"},
	{WS, "WS", "WSM", "Samoa"},
	{YE, "YE", "YEM", "Yemen"},
	{YT, "YT", "MYT", "Mayotte"},
	{ZA, "ZA", "ZAF", "South Africa"},
	{ZM, "ZM", "ZMB", "Zambia"},
	{ZW, "ZW", "ZWE", "Zimbabwe"},
}
