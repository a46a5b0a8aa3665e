package corpus

import (
	"github.com/google/uuid"

	"ai-legalaid-be/internal/entity"
)

// unitId derives a stable UUID from the unit's slug so reseeding never
// produces duplicate rows and tests can address units by name.
func unitId(slug string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://legalaid/units/"+slug))
}

// SampleUnits is the bundled starter corpus covering the bare acts and
// judgments most questions touch. Used by cmd/seed and as the fallback when
// the reference_units table is empty.
func SampleUnits() []*entity.ReferenceUnit {
	return []*entity.ReferenceUnit{
		{
			Id:           unitId("article-14"),
			Title:        "Constitution of India - Article 14 (Right to Equality)",
			Body:         "The State shall not deny to any person equality before the law or the equal protection of the laws within the territory of India. This article guarantees equality before law and equal protection of laws to all persons, citizens and non-citizens alike. It prohibits discrimination and ensures that all are equal in the eyes of law.",
			SourceLabel:  "Constitution of India",
			SectionLabel: "Article 14",
			Category:     "Constitutional Law",
			Keywords:     []string{"equality", "discrimination", "fundamental rights", "article 14"},
			URL:          "https://www.indiacode.nic.in/constitution-of-india",
		},
		{
			Id:           unitId("article-15"),
			Title:        "Constitution of India - Article 15 (Prohibition of Discrimination)",
			Body:         "The State shall not discriminate against any citizen on grounds only of religion, race, caste, sex, place of birth or any of them. This article prohibits discrimination by the State on grounds of religion, race, caste, sex or place of birth.",
			SourceLabel:  "Constitution of India",
			SectionLabel: "Article 15",
			Category:     "Constitutional Law",
			Keywords:     []string{"discrimination", "religion", "caste", "sex", "fundamental rights"},
			URL:          "https://www.indiacode.nic.in/constitution-of-india",
		},
		{
			Id:           unitId("article-19"),
			Title:        "Constitution of India - Article 19 (Freedom of Speech and Expression)",
			Body:         "All citizens shall have the right to freedom of speech and expression, to assemble peaceably and without arms, to form associations or unions, to move freely throughout India, and to practice any profession or carry on any occupation, trade or business.",
			SourceLabel:  "Constitution of India",
			SectionLabel: "Article 19",
			Category:     "Constitutional Law",
			Keywords:     []string{"freedom of speech", "expression", "assembly", "movement", "profession"},
			URL:          "https://www.indiacode.nic.in/constitution-of-india",
		},
		{
			Id:           unitId("article-21"),
			Title:        "Constitution of India - Article 21 (Right to Life and Personal Liberty)",
			Body:         "No person shall be deprived of his life or personal liberty except according to procedure established by law. This fundamental right has been interpreted broadly to include right to live with dignity, right to education, right to health, etc.",
			SourceLabel:  "Constitution of India",
			SectionLabel: "Article 21",
			Category:     "Constitutional Law",
			Keywords:     []string{"right to life", "personal liberty", "due process", "dignity"},
			URL:          "https://www.indiacode.nic.in/constitution-of-india",
		},
		{
			Id:           unitId("article-32"),
			Title:        "Constitution of India - Article 32 (Right to Constitutional Remedies)",
			Body:         "The right to move the Supreme Court by appropriate proceedings for the enforcement of the rights conferred by Part III is guaranteed. Article 32 is the foundation of Public Interest Litigation (PIL) in India: any public-spirited person may petition the Supreme Court for enforcement of fundamental rights, including on behalf of those unable to approach the court themselves. The Supreme Court shall have power to issue directions or orders or writs, including writs in the nature of habeas corpus, mandamus, prohibition, quo warranto and certiorari.",
			SourceLabel:  "Constitution of India",
			SectionLabel: "Article 32",
			Category:     "Constitutional Law",
			Keywords:     []string{"pil", "public interest litigation", "writ", "constitutional remedies", "supreme court"},
			URL:          "https://www.indiacode.nic.in/constitution-of-india",
		},
		{
			Id:           unitId("ipc-302"),
			Title:        "IPC Section 302 - Murder",
			Body:         "Whoever commits murder shall be punished with death, or imprisonment for life, and shall also be liable to fine. Murder is defined as the act of causing death with the intention of causing death or knowledge that the act is likely to cause death.",
			SourceLabel:  "Indian Penal Code 1860",
			SectionLabel: "Section 302",
			Category:     "Criminal Law",
			Keywords:     []string{"murder", "death", "life imprisonment", "intention", "criminal"},
			URL:          "https://www.indiacode.nic.in/indian-penal-code-1860",
		},
		{
			Id:           unitId("ipc-379"),
			Title:        "IPC Section 379 - Theft",
			Body:         "Whoever intends to take dishonestly any moveable property out of the possession of any person without that person's consent, moves that property in order to such taking, is said to commit theft. Punishment is imprisonment up to three years, or fine, or both.",
			SourceLabel:  "Indian Penal Code 1860",
			SectionLabel: "Section 379",
			Category:     "Criminal Law",
			Keywords:     []string{"theft", "dishonestly", "moveable property", "possession", "stealing"},
			URL:          "https://www.indiacode.nic.in/indian-penal-code-1860",
		},
		{
			Id:           unitId("ipc-498a"),
			Title:        "IPC Section 498A - Cruelty to Wife",
			Body:         "Whoever, being the husband or the relative of the husband of a woman, subjects such woman to cruelty shall be punished with imprisonment for a term which may extend to three years and shall also be liable to fine.",
			SourceLabel:  "Indian Penal Code 1860",
			SectionLabel: "Section 498A",
			Category:     "Criminal Law",
			Keywords:     []string{"cruelty", "wife", "husband", "dowry", "domestic violence"},
			URL:          "https://www.indiacode.nic.in/indian-penal-code-1860",
		},
		{
			Id:           unitId("contract-10"),
			Title:        "Indian Contract Act Section 10 - What Agreements are Contracts",
			Body:         "All agreements are contracts if they are made by the free consent of parties competent to contract, for a lawful consideration and with a lawful object, and are not hereby expressly declared to be void.",
			SourceLabel:  "Indian Contract Act 1872",
			SectionLabel: "Section 10",
			Category:     "Contract Law",
			Keywords:     []string{"contract", "agreement", "free consent", "consideration", "lawful object"},
			URL:          "https://www.indiacode.nic.in/indian-contract-act-1872",
		},
		{
			Id:           unitId("contract-73"),
			Title:        "Indian Contract Act Section 73 - Compensation for Breach",
			Body:         "When a contract has been broken, the party who suffers by such breach is entitled to receive compensation for any loss or damage caused to him thereby which naturally arose in the usual course of things from such breach.",
			SourceLabel:  "Indian Contract Act 1872",
			SectionLabel: "Section 73",
			Category:     "Contract Law",
			Keywords:     []string{"breach of contract", "compensation", "damages", "loss"},
			URL:          "https://www.indiacode.nic.in/indian-contract-act-1872",
		},
		{
			Id:           unitId("cpa-2-7"),
			Title:        "Consumer Protection Act 2019 - Definition of Consumer",
			Body:         "Consumer means any person who buys any goods for a consideration which has been paid or promised or partly paid and partly promised, or under any system of deferred payment and includes any user of such goods other than the person who buys such goods for resale or for any commercial purpose.",
			SourceLabel:  "Consumer Protection Act 2019",
			SectionLabel: "Section 2(7)",
			Category:     "Consumer Law",
			Keywords:     []string{"consumer", "goods", "consideration", "commercial purpose", "buyer"},
			URL:          "https://www.indiacode.nic.in/consumer-protection-act-2019",
		},
		{
			Id:           unitId("companies-166"),
			Title:        "Companies Act 2013 - Director's Duties",
			Body:         "A director of a company shall act in accordance with the articles of the company, shall act in good faith in order to promote the objects of the company for the benefit of its members as a whole, and in the best interests of the company, its employees, shareholders, community and for the protection of environment.",
			SourceLabel:  "Companies Act 2013",
			SectionLabel: "Section 166",
			Category:     "Corporate Law",
			Keywords:     []string{"director", "duties", "good faith", "shareholders", "fiduciary"},
			URL:          "https://www.indiacode.nic.in/companies-act-2013",
		},
		{
			Id:           unitId("mv-146"),
			Title:        "Motor Vehicles Act 1988 - Compulsory Insurance",
			Body:         "No person shall use, except as a passenger, or cause or allow any other person to use, a motor vehicle in a public place, unless there is in force in relation to the use of the vehicle by that person or that other person, as the case may be, a policy of insurance complying with the requirements of this Chapter.",
			SourceLabel:  "Motor Vehicles Act 1988",
			SectionLabel: "Section 146",
			Category:     "Motor Vehicle Law",
			Keywords:     []string{"motor vehicle", "insurance", "compulsory", "public place", "policy"},
			URL:          "https://www.indiacode.nic.in/motor-vehicles-act-1988",
		},
		{
			Id:           unitId("it-43"),
			Title:        "IT Act 2000 - Cyber Crimes and Penalties",
			Body:         "Whoever knowingly or intentionally accesses or secures access to any computer system or computer network without permission shall be liable to pay damages by way of compensation to the person so affected and penalty up to Rs. 1 crore.",
			SourceLabel:  "Information Technology Act 2000",
			SectionLabel: "Section 43",
			Category:     "Cyber Law",
			Keywords:     []string{"cyber crime", "unauthorized access", "computer", "hacking", "penalty"},
			URL:          "https://www.indiacode.nic.in/information-technology-act-2000",
		},
		{
			Id:           unitId("rti-3"),
			Title:        "RTI Act 2005 - Right to Information",
			Body:         "All citizens shall have the right to information under this Act. It shall be the duty of the State to maintain all its records duly catalogued and indexed in a manner and the form which facilitates the right to information under this Act.",
			SourceLabel:  "Right to Information Act 2005",
			SectionLabel: "Section 3",
			Category:     "Administrative Law",
			Keywords:     []string{"right to information", "rti", "transparency", "public records", "citizens"},
			URL:          "https://www.indiacode.nic.in/right-to-information-act-2005",
		},
		{
			Id:           unitId("gst-9"),
			Title:        "GST Act - Tax Liability",
			Body:         "Every supplier shall be liable to pay tax under this Act on all taxable supplies of goods or services or both made by him. The liability to pay tax on goods or services or both shall arise at the time of supply.",
			SourceLabel:  "Central Goods and Services Tax Act 2017",
			SectionLabel: "Section 9",
			Category:     "Tax Law",
			Keywords:     []string{"gst", "tax liability", "supplier", "taxable supply", "goods and services"},
			URL:          "https://www.indiacode.nic.in/central-goods-and-services-tax-act-2017",
		},
		{
			Id:           unitId("puttaswamy-2017"),
			Title:        "Privacy as Fundamental Right - K.S. Puttaswamy Case",
			Body:         "The Supreme Court in K.S. Puttaswamy v. Union of India (2017) held that privacy is a fundamental right under Article 21. The right to privacy is protected as an intrinsic part of the right to life and personal liberty under Article 21 and as a part of the freedoms guaranteed by Part III of the Constitution.",
			SourceLabel:  "Supreme Court Judgment",
			SectionLabel: "K.S. Puttaswamy v. Union of India (2017)",
			Category:     "Constitutional Law",
			Keywords:     []string{"privacy", "fundamental right", "article 21", "supreme court", "puttaswamy"},
			URL:          "https://sci.gov.in",
		},
	}
}
