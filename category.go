package ithkuil

import "strings"

// Category is one value of a closed grammatical enumeration. Ordinal 0 is
// the default of its enumeration and is suppressed when rendering unless
// defaults are shown or the enumeration has no default.
type Category struct {
	Kind    string
	Ordinal int
	Code    string
	Name    string
	always  bool
}

// Render implements Node.
func (c Category) Render(o Options) string {
	if c.Code == "" {
		return ""
	}
	if c.Ordinal == 0 && !o.ShowDefaults && !c.always {
		return ""
	}
	if o.Precision == Full {
		return strings.ToLower(c.Name)
	}
	return c.Code
}

// Enum is an ordered closed enumeration of categories.
type Enum struct {
	values []Category
}

// defineEnum builds an Enum from "CODE=full name" entries.
func defineEnum(kind string, noDefault bool, entries ...string) Enum {
	e := Enum{values: make([]Category, len(entries))}
	for i, entry := range entries {
		code, name, _ := strings.Cut(entry, "=")
		e.values[i] = Category{Kind: kind, Ordinal: i, Code: code, Name: name, always: noDefault}
	}
	return e
}

// At returns the i-th value. It panics on an index outside the enumeration.
func (e Enum) At(i int) Category { return e.values[i] }

var (
	Stems          = defineEnum("stem", false, "S1=stem one", "S2=stem two", "S3=stem three", "S0=stem zero")
	Versions       = defineEnum("version", false, "PRC=processual", "CPT=completive")
	Functions      = defineEnum("function", false, "STA=stative", "DYN=dynamic")
	Specifications = defineEnum("specification", false, "BSC=basic", "CTE=contential", "CSV=constitutive", "OBJ=objective")
	Contexts       = defineEnum("context", false, "EXS=existential", "FNC=functional", "RPS=representational", "AMG=amalgamative")

	Configurations = defineEnum("configuration", false,
		"UPX=uniplex", "DPX=duplex",
		"MSS=multiplex similar separate", "MSC=multiplex similar connected", "MSF=multiplex similar fused",
		"MDS=multiplex dissimilar separate", "MDC=multiplex dissimilar connected", "MDF=multiplex dissimilar fused",
		"MFS=multiplex fuzzy separate", "MFC=multiplex fuzzy connected", "MFF=multiplex fuzzy fused",
		"DSS=duplex similar separate", "DSC=duplex similar connected", "DSF=duplex similar fused",
		"DDS=duplex dissimilar separate", "DDC=duplex dissimilar connected", "DDF=duplex dissimilar fused",
		"DFS=duplex fuzzy separate", "DFC=duplex fuzzy connected", "DFF=duplex fuzzy fused",
	)
	Extensions   = defineEnum("extension", false, "DEL=delimitive", "PRX=proximal", "ICP=inceptive", "ATV=attenuative", "GRA=graduative", "DPL=depletive")
	Affiliations = defineEnum("affiliation", false, "CSL=consolidative", "ASO=associative", "COA=coalescent", "VAR=variative")
	Perspectives = defineEnum("perspective", false, "M=monadic", "G=agglomerative", "N=nomic", "A=abstract")
	Essences     = defineEnum("essence", false, "NRM=normal", "RPV=representative")

	Valences = defineEnum("valence", false,
		"MNO=monoactive", "PRL=parallel", "CRO=corollary", "RCP=reciprocal", "CPL=complementary",
		"DUP=duplicative", "DEM=demonstrative", "CNG=contingent", "PTI=participative")
	Phases = defineEnum("phase", true,
		"PUN=punctual", "ITR=iterative", "REP=repetitive", "ITM=intermittent", "RCT=recurrent",
		"FRE=frequentative", "FRG=fragmentative", "VAC=vacillative", "FLC=fluctuative")
	Effects = defineEnum("effect", true,
		"1:BEN=beneficial to speaker", "2:BEN=beneficial to addressee", "3:BEN=beneficial to third party",
		"SLF:BEN=beneficial to self", "UNK=unknown effect", "SLF:DET=detrimental to self",
		"3:DET=detrimental to third party", "2:DET=detrimental to addressee", "1:DET=detrimental to speaker")
	Levels = defineEnum("level", true,
		"MIN=minimal", "SBE=subequative", "IFL=inferior", "DFC=deficient", "EQU=equative",
		"SUR=surpassive", "SPL=superlative", "SPQ=superequative", "MAX=maximal")
	Aspects = defineEnum("aspect", true,
		"RTR=retrospective", "PRS=prospective", "HAB=habitual", "PRG=progressive", "IMM=imminent",
		"PCS=precessive", "REG=regulative", "SMM=summative", "ATP=anticipatory",
		"RSM=resumptive", "CSS=cessative", "PAU=pausal", "RGR=regressive", "PCL=preclusive",
		"CNT=continuative", "ICS=incessative", "EXP=experiential", "IRP=interruptive",
		"PMP=preemptive", "CLM=climactic", "DLT=dilatory", "TMP=temporary", "XPD=expenditive",
		"LIM=limitative", "EPD=expeditive", "PTC=protractive", "PPR=preparatory",
		"DCL=disclusive", "CCL=conclusive", "CUL=culminative", "IMD=intermediative", "TRD=tardative",
		"TNS=transitional", "ITC=intercommutative", "MTV=motive", "SQN=sequential")

	Moods      = defineEnum("mood", false, "FAC=factual", "SUB=subjunctive", "ASM=assumptive", "SPC=speculative", "COU=counterfactive", "HYP=hypothetical")
	CaseScopes = defineEnum("case-scope", false, "CCN=natural", "CCA=antecedent", "CCS=subaltern", "CCQ=qualifier", "CCP=precedent", "CCV=successive")

	Illocutions = defineEnum("illocution", false,
		"ASR=assertive", "DIR=directive", "DEC=declarative", "IRG=interrogative", "VER=verificative",
		"ADM=admonitive", "POT=potentiative", "HOR=hortative", "CNJ=conjectural")
	Validations = defineEnum("validation", false,
		"OBS=observational", "REC=recollective", "PUP=purportive", "RPR=reportive", "USP=unspecified",
		"IMA=imaginary", "CVN=conventional", "ITU=intuitive", "INF=inferential")

	Relations      = defineEnum("relation", false, "UNF=unframed", "FRA=framed")
	Concatenations = defineEnum("concatenation", true, "T1=type one", "T2=type two")
	Registers      = defineEnum("register", true,
		"DSV=discursive", "PNT=parenthetical", "SPF=specificative", "EXM=exemplificative", "CGT=cogitant", "END=end of register")

	Referents = defineEnum("referent", true,
		"1m=monadic speaker", "2m=monadic addressee", "2p=polyadic addressee",
		"ma=monadic animate third party", "pa=polyadic animate third party",
		"mi=monadic inanimate third party", "pi=polyadic inanimate third party",
		"Mx=mixed third party", "Rdp=reduplicative", "Obv=obviative", "PVS=provisional",
		"CAR=carrier", "QUO=quotative", "NAM=naming", "PHR=phrasal")
	ReferentEffects = defineEnum("referent effect", false, "NEU=neutral", "BEN=beneficial", "DET=detrimental")

	Cases = defineEnum("case", false,
		"THM=thematic", "INS=instrumental", "ABS=absolutive", "AFF=affective", "STM=stimulative",
		"EFF=effectuative", "ERG=ergative", "DAT=dative", "IND=inducive",
		"POS=possessive", "PRP=proprietive", "GEN=genitive", "ATT=attributive", "PDC=productive",
		"ITP=interpretive", "OGN=originative", "IDP=interdependent", "PAR=partitive",
		"APL=applicative", "PUR=purposive", "TRA=transmissive", "DFR=deferential", "CRS=contrastive",
		"TSP=transpositive", "CMM=commutative", "CMP=comparative", "CSD=considerative",
		"FUN=functive", "TFM=transformative", "CLA=classificative", "RSL=resultative", "CSM=consumptive",
		"CON=concessive", "AVR=aversive", "CVS=conversive", "SIT=situative",
		"PRN=pertinential", "DSP=descriptive", "COR=correlative", "CPS=compositive",
		"COM=comitative", "UTL=utilitative", "PRD=predicative", "RLT=relative",
		"ACT=activative", "ASI=assimilative", "ESS=essive", "TRM=terminative",
		"SEL=selective", "CFM=conformative", "DEP=dependent", "VOC=vocative",
		"LOC=locative", "ATD=attendant", "ALL=allative", "ABL=ablative",
		"ORI=orientative", "IRL=interrelative", "INV=intrative", "NAV=navigative",
		"CNR=concursive", "ASS=assessive", "PER=periodic", "PRO=prolapsive",
		"PCV=precursive", "PCR=postcursive", "ELP=elapsive", "PLM=prolimitive")
)

// absoluteLevel marks a level as absolute rather than relative.
func absoluteLevel(c Category) Category {
	c.Code = "a" + c.Code
	c.Name = "absolute " + c.Name
	c.always = true
	return c
}

// caseFromVowel resolves a Vc vowel to a case. Glottalized vowels, or plain
// vowels with glottal set, select cases 37-68, where form 5 has no case.
func caseFromVowel(v string, glottal bool) (Category, error) {
	plain, stopped := unglottalize(v)
	glottal = glottal || stopped
	vf, ok := lookupVowel(plain)
	if !ok {
		return Category{}, unknown("Vc", v)
	}
	if !glottal {
		return Cases.At((vf.Series-1)*9 + vf.Form - 1), nil
	}
	if vf.Form == 5 {
		return Category{}, unknown("Vc", v)
	}
	form := vf.Form - 1
	if vf.Form > 5 {
		form--
	}
	return Cases.At(36 + (vf.Series-1)*8 + form), nil
}

// Biases maps a bias adjunct consonant cluster to its category.
var Biases = func() map[string]Category {
	entries := []string{
		"lf ACC=accidental", "mçt ACH=achievemental", "lļ ADM=admissive", "drr ANN=annunciative",
		"lst ANP=anticipative", "řs APB=approbative", "xtļ ARB=arbitrary", "ňj ATE=attentive",
		"pļļ CMD=comedic", "rrj CNT=contensive", "gž CNV=convictive", "ššč COI=coincidental",
		"ňţ CRR=corrective", "gvv CTV=contemptive", "gzj DCC=disconcertive", "žž DEJ=dejective",
		"mžž DES=desperative", "cč DFD=diffident", "ẓmm DLC=delectative", "řř DOL=dolorous",
		"ffx DPB=disapprobative", "pfc DRS=derisive", "mmf DUB=dubitative", "gzz EUH=euphoric",
		"vvt EUP=euphemistic", "kçç EXA=exasperative", "rrs EXG=exigent", "lzp FOR=fortuitous",
		"žžj FSC=fascinative", "mmh GRT=gratificative", "pšš IDG=indignative", "vvr IFT=infatuative",
		"vll IPL=implicative", "žžv IPT=impatient", "mmž IRO=ironic", "lçp ISP=insipid",
		"řřx IVD=invidious", "msk MAN=mandatory", "ççk OPT=optimal", "ksp PES=pessimistic",
		"mll PPT=propitious", "llh PPX=perplexive", "žžt PSC=prosaic", "kll RAC=reactive",
		"llm RFL=reflective", "msf RSG=resignative", "šch RPU=repulsive", "mmļ RVL=revelative",
		"ļţ SAT=satiative", "ltç SGS=suggestive", "rnž SKP=skeptical", "ňňs SOL=solicitative",
		"ļļč STU=stupefactive", "llč TRP=trepidative", "ksk VEX=vexative",
	}
	m := make(map[string]Category, len(entries))
	for i, e := range entries {
		cluster, rest, _ := strings.Cut(e, " ")
		code, name, _ := strings.Cut(rest, "=")
		m[cluster] = Category{Kind: "bias", Ordinal: i + 1, Code: code, Name: name, always: true}
	}
	return m
}()
