package relations

import (
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
)

// table is the single authored source for both directions of the index.
// Currency edges follow ISO 4217 country designations; language edges
// record official and widely used languages and are not normative.
var table = [...]link{
	{country.AD, []currency.Currency{currency.EUR}, []language.Language{language.CA}},
	{country.AE, []currency.Currency{currency.AED}, []language.Language{language.AR}},
	{country.AF, []currency.Currency{currency.AFN}, []language.Language{language.FA, language.PS}},
	{country.AG, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.AI, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.AL, []currency.Currency{currency.ALL}, []language.Language{language.SQ}},
	{country.AM, []currency.Currency{currency.AMD}, []language.Language{language.HY}},
	{country.AO, []currency.Currency{currency.AOA}, []language.Language{language.PT}},
	{country.AQ, []currency.Currency{}, []language.Language{}},
	{country.AR, []currency.Currency{currency.ARS}, []language.Language{language.ES}},
	{country.AS, []currency.Currency{currency.USD}, []language.Language{language.EN, language.SM}},
	{country.AT, []currency.Currency{currency.EUR}, []language.Language{language.DE}},
	{country.AU, []currency.Currency{currency.AUD}, []language.Language{language.EN}},
	{country.AW, []currency.Currency{currency.AWG}, []language.Language{language.NL}},
	{country.AX, []currency.Currency{currency.EUR}, []language.Language{language.SV}},
	{country.AZ, []currency.Currency{currency.AZN}, []language.Language{language.AZ}},
	{country.BA, []currency.Currency{currency.BAM}, []language.Language{language.BS, language.HR, language.SR}},
	{country.BB, []currency.Currency{currency.BBD}, []language.Language{language.EN}},
	{country.BD, []currency.Currency{currency.BDT}, []language.Language{language.BN}},
	{country.BE, []currency.Currency{currency.EUR}, []language.Language{language.DE, language.FR, language.NL}},
	{country.BF, []currency.Currency{currency.XOF}, []language.Language{language.FR}},
	{country.BG, []currency.Currency{currency.BGN}, []language.Language{language.BG}},
	{country.BH, []currency.Currency{currency.BHD}, []language.Language{language.AR}},
	{country.BI, []currency.Currency{currency.BIF}, []language.Language{language.EN, language.FR, language.RN}},
	{country.BJ, []currency.Currency{currency.XOF}, []language.Language{language.FR}},
	{country.BL, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.BM, []currency.Currency{currency.BMD}, []language.Language{language.EN}},
	{country.BN, []currency.Currency{currency.BND}, []language.Language{language.MS}},
	{country.BO, []currency.Currency{currency.BOB, currency.BOV}, []language.Language{language.AY, language.ES, language.GN, language.QU}},
	{country.BQ, []currency.Currency{currency.USD}, []language.Language{language.NL}},
	{country.BR, []currency.Currency{currency.BRL}, []language.Language{language.PT}},
	{country.BS, []currency.Currency{currency.BSD}, []language.Language{language.EN}},
	{country.BT, []currency.Currency{currency.BTN, currency.INR}, []language.Language{language.DZ}},
	{country.BV, []currency.Currency{currency.NOK}, []language.Language{language.NO}},
	{country.BW, []currency.Currency{currency.BWP}, []language.Language{language.EN}},
	{country.BY, []currency.Currency{currency.BYN}, []language.Language{language.BE, language.RU}},
	{country.BZ, []currency.Currency{currency.BZD}, []language.Language{language.EN}},
	{country.CA, []currency.Currency{currency.CAD}, []language.Language{language.EN, language.FR}},
	{country.CC, []currency.Currency{currency.AUD}, []language.Language{language.EN, language.MS}},
	{country.CD, []currency.Currency{currency.CDF}, []language.Language{language.FR}},
	{country.CF, []currency.Currency{currency.XAF}, []language.Language{language.FR, language.SG}},
	{country.CG, []currency.Currency{currency.XAF}, []language.Language{language.FR}},
	{country.CH, []currency.Currency{currency.CHE, currency.CHF, currency.CHW}, []language.Language{language.DE, language.FR, language.IT, language.RM}},
	{country.CI, []currency.Currency{currency.XOF}, []language.Language{language.FR}},
	{country.CK, []currency.Currency{currency.NZD}, []language.Language{language.EN}},
	{country.CL, []currency.Currency{currency.CLF, currency.CLP}, []language.Language{language.ES}},
	{country.CM, []currency.Currency{currency.XAF}, []language.Language{language.EN, language.FR}},
	{country.CN, []currency.Currency{currency.CNY}, []language.Language{language.ZH}},
	{country.CO, []currency.Currency{currency.COP, currency.COU}, []language.Language{language.ES}},
	{country.CR, []currency.Currency{currency.CRC}, []language.Language{language.ES}},
	{country.CU, []currency.Currency{currency.CUP}, []language.Language{language.ES}},
	{country.CV, []currency.Currency{currency.CVE}, []language.Language{language.PT}},
	{country.CW, []currency.Currency{currency.ANG}, []language.Language{language.EN, language.NL}},
	{country.CX, []currency.Currency{currency.AUD}, []language.Language{language.EN, language.MS, language.ZH}},
	{country.CY, []currency.Currency{currency.EUR}, []language.Language{language.EL, language.TR}},
	{country.CZ, []currency.Currency{currency.CZK}, []language.Language{language.CS, language.SK}},
	{country.DE, []currency.Currency{currency.EUR}, []language.Language{language.DE}},
	{country.DJ, []currency.Currency{currency.DJF}, []language.Language{language.AR, language.FR}},
	{country.DK, []currency.Currency{currency.DKK}, []language.Language{language.DA}},
	{country.DM, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.DO, []currency.Currency{currency.DOP}, []language.Language{language.ES}},
	{country.DZ, []currency.Currency{currency.DZD}, []language.Language{language.AR}},
	{country.EC, []currency.Currency{currency.USD}, []language.Language{language.ES, language.QU}},
	{country.EE, []currency.Currency{currency.EUR}, []language.Language{language.ET}},
	{country.EG, []currency.Currency{currency.EGP}, []language.Language{language.AR}},
	{country.EH, []currency.Currency{currency.MAD}, []language.Language{language.AR, language.ES}},
	{country.ER, []currency.Currency{currency.ERN}, []language.Language{language.TI}},
	{country.ES, []currency.Currency{currency.EUR}, []language.Language{language.ES}},
	{country.ET, []currency.Currency{currency.ETB}, []language.Language{language.AA, language.AM, language.OM, language.SO, language.TI}},
	{country.FI, []currency.Currency{currency.EUR}, []language.Language{language.FI, language.SV}},
	{country.FJ, []currency.Currency{currency.FJD}, []language.Language{language.EN, language.FJ}},
	{country.FK, []currency.Currency{currency.FKP}, []language.Language{language.EN}},
	{country.FM, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.FO, []currency.Currency{currency.DKK}, []language.Language{language.DA, language.FO}},
	{country.FR, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.GA, []currency.Currency{currency.XAF}, []language.Language{language.FR}},
	{country.GB, []currency.Currency{currency.GBP}, []language.Language{language.EN}},
	{country.GD, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.GE, []currency.Currency{currency.GEL}, []language.Language{language.KA}},
	{country.GF, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.GG, []currency.Currency{currency.GBP}, []language.Language{language.EN}},
	{country.GH, []currency.Currency{currency.GHS}, []language.Language{language.EN}},
	{country.GI, []currency.Currency{currency.GIP}, []language.Language{language.EN}},
	{country.GL, []currency.Currency{currency.DKK}, []language.Language{language.DA, language.EN}},
	{country.GM, []currency.Currency{currency.GMD}, []language.Language{language.EN}},
	{country.GN, []currency.Currency{currency.GNF}, []language.Language{language.FR}},
	{country.GP, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.GQ, []currency.Currency{currency.XAF}, []language.Language{language.ES, language.FR, language.PT}},
	{country.GR, []currency.Currency{currency.EUR}, []language.Language{language.EL}},
	{country.GS, []currency.Currency{}, []language.Language{language.EN}},
	{country.GT, []currency.Currency{currency.GTQ}, []language.Language{language.ES}},
	{country.GU, []currency.Currency{currency.USD}, []language.Language{language.CH, language.EN}},
	{country.GW, []currency.Currency{currency.XOF}, []language.Language{language.PT}},
	{country.GY, []currency.Currency{currency.GYD}, []language.Language{language.EN}},
	{country.HK, []currency.Currency{currency.HKD}, []language.Language{language.EN, language.ZH}},
	{country.HM, []currency.Currency{currency.AUD}, []language.Language{language.EN}},
	{country.HN, []currency.Currency{currency.HNL}, []language.Language{language.ES}},
	{country.HR, []currency.Currency{currency.EUR}, []language.Language{language.HR}},
	{country.HT, []currency.Currency{currency.HTG}, []language.Language{language.FR, language.HT}},
	{country.HU, []currency.Currency{currency.HUF}, []language.Language{language.HU}},
	{country.ID, []currency.Currency{currency.IDR}, []language.Language{language.ID}},
	{country.IE, []currency.Currency{currency.EUR}, []language.Language{language.EN, language.GA}},
	{country.IL, []currency.Currency{currency.ILS}, []language.Language{language.HE}},
	{country.IM, []currency.Currency{currency.GBP}, []language.Language{language.EN, language.GV}},
	{country.IN, []currency.Currency{currency.INR}, []language.Language{language.EN, language.HI}},
	{country.IO, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.IQ, []currency.Currency{currency.IQD}, []language.Language{language.AR, language.KU}},
	{country.IR, []currency.Currency{currency.IRR}, []language.Language{language.FA}},
	{country.IS, []currency.Currency{currency.ISK}, []language.Language{language.IS}},
	{country.IT, []currency.Currency{currency.EUR}, []language.Language{language.IT}},
	{country.JE, []currency.Currency{currency.GBP}, []language.Language{language.EN, language.FR}},
	{country.JM, []currency.Currency{currency.JMD}, []language.Language{language.EN}},
	{country.JO, []currency.Currency{currency.JOD}, []language.Language{language.AR}},
	{country.JP, []currency.Currency{currency.JPY}, []language.Language{language.JA}},
	{country.KE, []currency.Currency{currency.KES}, []language.Language{language.EN, language.SW}},
	{country.KG, []currency.Currency{currency.KGS}, []language.Language{language.KY, language.RU}},
	{country.KH, []currency.Currency{currency.KHR}, []language.Language{language.KM}},
	{country.KI, []currency.Currency{currency.AUD}, []language.Language{language.EN}},
	{country.KM, []currency.Currency{currency.KMF}, []language.Language{language.AR, language.FR}},
	{country.KN, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.KP, []currency.Currency{currency.KPW}, []language.Language{language.KO}},
	{country.KR, []currency.Currency{currency.KRW}, []language.Language{language.KO}},
	{country.KW, []currency.Currency{currency.KWD}, []language.Language{language.AR}},
	{country.KY, []currency.Currency{currency.KYD}, []language.Language{language.EN}},
	{country.KZ, []currency.Currency{currency.KZT}, []language.Language{language.KK, language.RU}},
	{country.LA, []currency.Currency{currency.LAK}, []language.Language{language.LO}},
	{country.LB, []currency.Currency{currency.LBP}, []language.Language{language.AR}},
	{country.LC, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.LI, []currency.Currency{currency.CHF}, []language.Language{language.DE}},
	{country.LK, []currency.Currency{currency.LKR}, []language.Language{language.SI, language.TA}},
	{country.LR, []currency.Currency{currency.LRD}, []language.Language{language.EN}},
	{country.LS, []currency.Currency{currency.LSL, currency.ZAR}, []language.Language{language.EN, language.ST}},
	{country.LT, []currency.Currency{currency.EUR}, []language.Language{language.LT}},
	{country.LU, []currency.Currency{currency.EUR}, []language.Language{language.DE, language.FR, language.LB}},
	{country.LV, []currency.Currency{currency.EUR}, []language.Language{language.LV}},
	{country.LY, []currency.Currency{currency.LYD}, []language.Language{language.AR}},
	{country.MA, []currency.Currency{currency.MAD}, []language.Language{language.AR}},
	{country.MC, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.MD, []currency.Currency{currency.MDL}, []language.Language{language.RO}},
	{country.ME, []currency.Currency{currency.EUR}, []language.Language{language.HR, language.SR}},
	{country.MF, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.MG, []currency.Currency{currency.MGA}, []language.Language{language.FR, language.MG}},
	{country.MH, []currency.Currency{currency.USD}, []language.Language{language.EN, language.MH}},
	{country.MK, []currency.Currency{currency.MKD}, []language.Language{language.MK, language.SQ}},
	{country.ML, []currency.Currency{currency.XOF}, []language.Language{language.BM, language.FF}},
	{country.MM, []currency.Currency{currency.MMK}, []language.Language{language.MY}},
	{country.MN, []currency.Currency{currency.MNT}, []language.Language{language.MN}},
	{country.MO, []currency.Currency{currency.MOP}, []language.Language{language.PT, language.ZH}},
	{country.MP, []currency.Currency{currency.USD}, []language.Language{language.CH, language.EN}},
	{country.MQ, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.MR, []currency.Currency{currency.MRU}, []language.Language{language.AR}},
	{country.MS, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.MT, []currency.Currency{currency.EUR}, []language.Language{language.EN, language.MT}},
	{country.MU, []currency.Currency{currency.MUR}, []language.Language{language.EN}},
	{country.MV, []currency.Currency{currency.MVR}, []language.Language{language.DV}},
	{country.MW, []currency.Currency{currency.MWK}, []language.Language{language.EN, language.NY}},
	{country.MX, []currency.Currency{currency.MXN, currency.MXV}, []language.Language{language.ES}},
	{country.MY, []currency.Currency{currency.MYR}, []language.Language{language.MS}},
	{country.MZ, []currency.Currency{currency.MZN}, []language.Language{language.PT}},
	{country.NA, []currency.Currency{currency.NAD, currency.ZAR}, []language.Language{language.EN}},
	{country.NC, []currency.Currency{currency.XPF}, []language.Language{language.FR}},
	{country.NE, []currency.Currency{currency.XOF}, []language.Language{language.FR}},
	{country.NF, []currency.Currency{currency.AUD}, []language.Language{language.EN}},
	{country.NG, []currency.Currency{currency.NGN}, []language.Language{language.EN}},
	{country.NI, []currency.Currency{currency.NIO}, []language.Language{language.ES}},
	{country.NL, []currency.Currency{currency.EUR}, []language.Language{language.NL}},
	{country.NO, []currency.Currency{currency.NOK}, []language.Language{language.NO}},
	{country.NP, []currency.Currency{currency.NPR}, []language.Language{language.NE}},
	{country.NR, []currency.Currency{currency.AUD}, []language.Language{language.EN, language.NA}},
	{country.NU, []currency.Currency{currency.NZD}, []language.Language{language.EN}},
	{country.NZ, []currency.Currency{currency.NZD}, []language.Language{language.EN, language.MI}},
	{country.OM, []currency.Currency{currency.OMR}, []language.Language{language.AR}},
	{country.PA, []currency.Currency{currency.PAB, currency.USD}, []language.Language{language.ES}},
	{country.PE, []currency.Currency{currency.PEN}, []language.Language{language.AY, language.ES, language.QU}},
	{country.PF, []currency.Currency{currency.XPF}, []language.Language{language.FR}},
	{country.PG, []currency.Currency{currency.PGK}, []language.Language{language.EN, language.HO}},
	{country.PH, []currency.Currency{currency.PHP}, []language.Language{language.EN, language.TL}},
	{country.PK, []currency.Currency{currency.PKR}, []language.Language{language.EN, language.UR}},
	{country.PL, []currency.Currency{currency.PLN}, []language.Language{language.PL}},
	{country.PM, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.PN, []currency.Currency{currency.NZD}, []language.Language{language.EN}},
	{country.PR, []currency.Currency{currency.USD}, []language.Language{language.EN, language.ES}},
	{country.PS, []currency.Currency{}, []language.Language{language.AR}},
	{country.PT, []currency.Currency{currency.EUR}, []language.Language{language.PT}},
	{country.PW, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.PY, []currency.Currency{currency.PYG}, []language.Language{language.ES, language.GN}},
	{country.QA, []currency.Currency{currency.QAR}, []language.Language{language.AR}},
	{country.RE, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.RO, []currency.Currency{currency.RON}, []language.Language{language.RO}},
	{country.RS, []currency.Currency{currency.RSD}, []language.Language{language.SR}},
	{country.RU, []currency.Currency{currency.RUB}, []language.Language{language.RU}},
	{country.RW, []currency.Currency{currency.RWF}, []language.Language{language.EN, language.FR, language.RW, language.SW}},
	{country.SA, []currency.Currency{currency.SAR}, []language.Language{language.AR}},
	{country.SB, []currency.Currency{currency.SBD}, []language.Language{language.EN}},
	{country.SC, []currency.Currency{currency.SCR}, []language.Language{language.EN, language.FR}},
	{country.SD, []currency.Currency{currency.SDG}, []language.Language{language.AR, language.EN}},
	{country.SE, []currency.Currency{currency.SEK}, []language.Language{language.SV}},
	{country.SG, []currency.Currency{currency.SGD}, []language.Language{language.EN, language.MS, language.TA, language.ZH}},
	{country.SH, []currency.Currency{currency.GBP, currency.SHP}, []language.Language{language.EN}},
	{country.SI, []currency.Currency{currency.EUR}, []language.Language{language.SL}},
	{country.SJ, []currency.Currency{currency.NOK}, []language.Language{language.NO}},
	{country.SK, []currency.Currency{currency.EUR}, []language.Language{language.SK}},
	{country.SL, []currency.Currency{currency.SLE, currency.SLL}, []language.Language{language.EN}},
	{country.SM, []currency.Currency{currency.EUR}, []language.Language{language.IT}},
	{country.SN, []currency.Currency{currency.XOF}, []language.Language{language.FR}},
	{country.SO, []currency.Currency{currency.SOS}, []language.Language{language.AR, language.SO}},
	{country.SR, []currency.Currency{currency.SRD}, []language.Language{language.NL}},
	{country.SS, []currency.Currency{currency.SSP}, []language.Language{language.EN}},
	{country.ST, []currency.Currency{currency.STN}, []language.Language{language.PT}},
	{country.SV, []currency.Currency{currency.SVC, currency.USD}, []language.Language{language.ES}},
	{country.SX, []currency.Currency{currency.ANG}, []language.Language{language.EN, language.NL}},
	{country.SY, []currency.Currency{currency.SYP}, []language.Language{language.AR}},
	{country.SZ, []currency.Currency{currency.SZL, currency.ZAR}, []language.Language{language.EN, language.SS}},
	{country.TC, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.TD, []currency.Currency{currency.XAF}, []language.Language{language.AR, language.FR}},
	{country.TF, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.TG, []currency.Currency{currency.XOF}, []language.Language{language.FR}},
	{country.TH, []currency.Currency{currency.THB}, []language.Language{language.TH}},
	{country.TJ, []currency.Currency{currency.TJS}, []language.Language{language.TG}},
	{country.TK, []currency.Currency{currency.NZD}, []language.Language{language.EN}},
	{country.TL, []currency.Currency{currency.USD}, []language.Language{language.PT}},
	{country.TM, []currency.Currency{currency.TMT}, []language.Language{language.TK}},
	{country.TN, []currency.Currency{currency.TND}, []language.Language{language.AR}},
	{country.TO, []currency.Currency{currency.TOP}, []language.Language{language.EN, language.TO}},
	{country.TR, []currency.Currency{currency.TRY}, []language.Language{language.TR}},
	{country.TT, []currency.Currency{currency.TTD}, []language.Language{language.EN}},
	{country.TV, []currency.Currency{currency.AUD}, []language.Language{language.EN}},
	{country.TW, []currency.Currency{currency.TWD}, []language.Language{language.ZH}},
	{country.TZ, []currency.Currency{currency.TZS}, []language.Language{language.EN, language.SW}},
	{country.UA, []currency.Currency{currency.UAH}, []language.Language{language.UK}},
	{country.UG, []currency.Currency{currency.UGX}, []language.Language{language.EN, language.SW}},
	{country.UM, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.US, []currency.Currency{currency.USD, currency.USN}, []language.Language{language.EN}},
	{country.UY, []currency.Currency{currency.UYI, currency.UYU, currency.UYW}, []language.Language{language.ES}},
	{country.UZ, []currency.Currency{currency.UZS}, []language.Language{language.UZ}},
	{country.VA, []currency.Currency{currency.EUR}, []language.Language{language.IT, language.LA}},
	{country.VC, []currency.Currency{currency.XCD}, []language.Language{language.EN}},
	{country.VE, []currency.Currency{currency.VED, currency.VES}, []language.Language{language.ES}},
	{country.VG, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.VI, []currency.Currency{currency.USD}, []language.Language{language.EN}},
	{country.VN, []currency.Currency{currency.VND}, []language.Language{language.VI}},
	{country.VU, []currency.Currency{currency.VUV}, []language.Language{language.BI, language.EN, language.FR}},
	{country.WF, []currency.Currency{currency.XPF}, []language.Language{language.FR}},
	{country.WS, []currency.Currency{currency.WST}, []language.Language{language.EN, language.SM}},
	{country.YE, []currency.Currency{currency.YER}, []language.Language{language.AR}},
	{country.YT, []currency.Currency{currency.EUR}, []language.Language{language.FR}},
	{country.ZA, []currency.Currency{currency.ZAR}, []language.Language{language.AF, language.EN, language.NR, language.SS, language.ST, language.TN, language.TS, language.VE, language.XH, language.ZU}},
	{country.ZM, []currency.Currency{currency.ZMW}, []language.Language{language.EN}},
	{country.ZW, []currency.Currency{currency.ZWL}, []language.Language{language.EN, language.NR, language.NY, language.SN, language.ST, language.TN, language.VE, language.XH}},
}
