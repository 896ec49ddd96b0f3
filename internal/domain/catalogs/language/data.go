package language

// Language constants are ISO 639-1 codes in definition order.
const (
	AA Language = iota + 1
	AB
	AE
	AF
	AK
	AM
	AN
	AR
	AS
	AV
	AY
	AZ
	BA
	BE
	BG
	BI
	BM
	BN
	BO
	BR
	BS
	CA
	CE
	CH
	CO
	CR
	CS
	CU
	CV
	CY
	DA
	DE
	DV
	DZ
	EE
	EL
	EN
	EO
	ES
	ET
	EU
	FA
	FF
	FI
	FJ
	FO
	FR
	FY
	GA
	GD
	GL
	GN
	GU
	GV
	HA
	HE
	HI
	HO
	HR
	HT
	HU
	HY
	HZ
	IA
	ID
	IE
	IG
	II
	IK
	IO
	IS
	IT
	IU
	JA
	JV
	KA
	KG
	KI
	KJ
	KK
	KL
	KM
	KN
	KO
	KR
	KS
	KU
	KV
	KW
	KY
	LA
	LB
	LG
	LI
	LN
	LO
	LT
	LU
	LV
	MG
	MH
	MI
	MK
	ML
	MN
	MR
	MS
	MT
	MY
	NA
	NB
	ND
	NE
	NG
	NL
	NN
	NO
	NR
	NV
	NY
	OC
	OJ
	OM
	OR
	OS
	PA
	PI
	PL
	PS
	PT
	QU
	RM
	RN
	RO
	RU
	RW
	SA
	SC
	SD
	SE
	SG
	SI
	SK
	SL
	SM
	SN
	SO
	SQ
	SR
	SS
	ST
	SU
	SV
	SW
	TA
	TE
	TG
	TH
	TI
	TK
	TL
	TN
	TO
	TR
	TS
	TT
	TW
	TY
	UG
	UK
	UR
	UZ
	VE
	VI
	VO
	WA
	WO
	XH
	YI
	YO
	ZA
	ZH
	ZU
)

var catalogue = [...]info{
	{AA, "AA", "Afar"},
	{AB, "AB", "Abkhazian"},
	{AE, "AE", "Avestan"},
	{AF, "AF", "Afrikaans"},
	{AK, "AK", "Akan"},
	{AM, "AM", "Amharic"},
	{AN, "AN", "Aragonese"},
	{AR, "AR", "Arabic"},
	{AS, "AS", "Assamese"},
	{AV, "AV", "Avaric"},
	{AY, "AY", "Aymara"},
	{AZ, "AZ", "Azerbaijani"},
	{BA, "BA", "Bashkir"},
	{BE, "BE", "Belarusian"},
	{BG, "BG", "Bulgarian"},
	{BI, "BI", "Bislama"},
	{BM, "BM", "Bambara"},
	{BN, "BN", "Bengali"},
	{BO, "BO", "Tibetan"},
	{BR, "BR", "Breton"},
	{BS, "BS", "Bosnian"},
	{CA, "CA", "Catalan"},
	{CE, "CE", "Chechen"},
	{CH, "CH", "Chamorro"},
	{CO, "CO", "Corsican"},
	{CR, "CR", "Cree"},
	{CS, "CS", "Czech"},
	{CU, "CU", "Church Slavonic"},
	{CV, "CV", "Chuvash"},
	{CY, "CY", "Welsh"},
	{DA, "DA", "Danish"},
	{DE, "DE", "German"},
	{DV, "DV", "Divehi"},
	{DZ, "DZ", "Dzongkha"},
	{EE, "EE", "Ewe"},
	{EL, "EL", "Greek"},
	{EN, "EN", "English"},
	{EO, "EO", "Esperanto"},
	{ES, "ES", "Spanish"},
	{ET, "ET", "Estonian"},
	{EU, "EU", "Basque"},
	{FA, "FA", "Persian"},
	{FF, "FF", "Fulah"},
	{FI, "FI", "Finnish"},
	{FJ, "FJ", "Fijian"},
	{FO, "FO", "Faroese"},
	{FR, "FR", "French"},
	{FY, "FY", "Western Frisian"},
	{GA, "GA", "Irish"},
	{GD, "GD", "Gaelic"},
	{GL, "GL", "Galician"},
	{GN, "GN", "Guarani"},
	{GU, "GU", "Gujarati"},
	{GV, "GV", "Manx"},
	{HA, "HA", "Hausa"},
	{HE, "HE", "Hebrew"},
	{HI, "HI", "Hindi"},
	{HO, "HO", "Hiri Motu"},
	{HR, "HR", "Croatian"},
	{HT, "HT", "Haitian"},
	{HU, "HU", "Hungarian"},
	{HY, "HY", "Armenian"},
	{HZ, "HZ", "Herero"},
	{IA, "IA", "Interlingua"},
	{ID, "ID", "Indonesian"},
	{IE, "IE", "Interlingue"},
	{IG, "IG", "Igbo"},
	{II, "II", "Sichuan Yi"},
	{IK, "IK", "Inupiaq"},
	{IO, "IO", "Ido"},
	{IS, "IS", "Icelandic"},
	{IT, "IT", "Italian"},
	{IU, "IU", "Inuktitut"},
	{JA, "JA", "Japanese"},
	{JV, "JV", "Javanese"},
	{KA, "KA", "Georgian"},
	{KG, "KG", "Kongo"},
	{KI, "KI", "Kikuyu"},
	{KJ, "KJ", "Kuanyama"},
	{KK, "KK", "Kazakh"},
	{KL, "KL", "Kalaallisut"},
	{KM, "KM", "Central Khmer"},
	{KN, "KN", "Kannada"},
	{KO, "KO", "Korean"},
	{KR, "KR", "Kanuri"},
	{KS, "KS", "Kashmiri"},
	{KU, "KU", "Kurdish"},
	{KV, "KV", "Komi"},
	{KW, "KW", "Cornish"},
	{KY, "KY", "Kirghiz"},
	{LA, "LA", "Latin"},
	{LB, "LB", "Luxembourgish"},
	{LG, "LG", "Ganda"},
	{LI, "LI", "Limburgan"},
	{LN, "LN", "Lingala"},
	{LO, "LO", "Lao"},
	{LT, "LT", "Lithuanian"},
	{LU, "LU", "Luba-Katanga"},
	{LV, "LV", "Latvian"},
	{MG, "MG", "Malagasy"},
	{MH, "MH", "Marshallese"},
	{MI, "MI", "Maori"},
	{MK, "MK", "Macedonian"},
	{ML, "ML", "Malayalam"},
	{MN, "MN", "Mongolian"},
	{MR, "MR", "Marathi"},
	{MS, "MS", "Malay"},
	{MT, "MT", "Maltese"},
	{MY, "MY", "Burmese"},
	{NA, "NA", "Nauru"},
	{NB, "NB", "Norwegian Bokmål"},
	{ND, "ND", "North Ndebele"},
	{NE, "NE", "Nepali"},
	{NG, "NG", "Ndonga"},
	{NL, "NL", "Dutch"},
	{NN, "NN", "Norwegian Nynorsk"},
	{NO, "NO", "Norwegian"},
	{NR, "NR", "South Ndebele"},
	{NV, "NV", "Navajo"},
	{NY, "NY", "Chichewa"},
	{OC, "OC", "Occitan"},
	{OJ, "OJ", "Ojibwa"},
	{OM, "OM", "Oromo"},
	{OR, "OR", "Oriya"},
	{OS, "OS", "Ossetian"},
	{PA, "PA", "Punjabi"},
	{PI, "PI", "Pali"},
	{PL, "PL", "Polish"},
	{PS, "PS", "Pashto"},
	{PT, "PT", "Portuguese"},
	{QU, "QU", "Quechua"},
	{RM, "RM", "Romansh"},
	{RN, "RN", "Rundi"},
	{RO, "RO", "Romanian"},
	{RU, "RU", "Russian"},
	{RW, "RW", "Kinyarwanda"},
	{SA, "SA", "Sanskrit"},
	{SC, "SC", "Sardinian"},
	{SD, "SD", "Sindhi"},
	{SE, "SE", "Northern Sami"},
	{SG, "SG", "Sango"},
	{SI, "SI", "Sinhala"},
	{SK, "SK", "Slovak"},
	{SL, "SL", "Slovenian"},
	{SM, "SM", "Samoan"},
	{SN, "SN", "Shona"},
	{SO, "SO", "Somali"},
	{SQ, "SQ", "Albanian"},
	{SR, "SR", "Serbian"},
	{SS, "SS", "Swati"},
	{ST, "ST", "Southern Sotho"},
	{SU, "SU", "Sundanese"},
	{SV, "SV", "Swedish"},
	{SW, "SW", "Swahili"},
	{TA, "TA", "Tamil"},
	{TE, "TE", "Telugu"},
	{TG, "TG", "Tajik"},
	{TH, "TH", "Thai"},
	{TI, "TI", "Tigrinya"},
	{TK, "TK", "Turkmen"},
	{TL, "TL", "Tagalog"},
	{TN, "TN", "Tswana"},
	{TO, "TO", "Tonga"},
	{TR, "TR", "Turkish"},
	{TS, "TS", "Tsonga"},
	{TT, "TT", "Tatar"},
	{TW, "TW", "Twi"},
	{TY, "TY", "Tahitian"},
	{UG, "UG", "Uighur"},
	{UK, "UK", "Ukrainian"},
	{UR, "UR", "Urdu"},
	{UZ, "UZ", "Uzbek"},
	{VE, "VE", "Venda"},
	{VI, "VI", "Vietnamese"},
	{VO, "VO", "Volapük"},
	{WA, "WA", "Walloon"},
	{WO, "WO", "Wolof"},
	{XH, "XH", "Xhosa"},
	{YI, "YI", "Yiddish"},
	{YO, "YO", "Yoruba"},
	{ZA, "ZA", "Zhuang"},
	{ZH, "ZH", "Chinese"},
	{ZU, "ZU", "Zulu"},
}
