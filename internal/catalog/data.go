package catalog

// Default returns the bundled procedure and diagnosis catalog for the oral
// and maxillofacial surgery service.
func Default() *Catalog {
	return New(defaultProcedures, defaultDiagnoses)
}

var defaultProcedures = []ProcedureCode{
	// Orthognathic surgery
	{Code: "21141", Description: "LeFort I osteotomy, single piece, without bone graft", Category: "Orthognathic Surgery", IsFavorite: true},
	{Code: "21142", Description: "LeFort I osteotomy, 2 pieces, without bone graft", Category: "Orthognathic Surgery"},
	{Code: "21143", Description: "LeFort I osteotomy, 3 or more pieces, without bone graft", Category: "Orthognathic Surgery"},
	{Code: "21145", Description: "LeFort I osteotomy, single piece, with bone graft", Category: "Orthognathic Surgery"},
	{Code: "21196", Description: "Mandibular ramus osteotomy, sagittal split, with internal fixation", Category: "Orthognathic Surgery", IsFavorite: true},
	{Code: "21198", Description: "Segmental osteotomy of mandible", Category: "Orthognathic Surgery"},
	{Code: "21206", Description: "Segmental osteotomy of maxilla", Category: "Orthognathic Surgery"},
	{Code: "21121", Description: "Sliding genioplasty, single piece", Category: "Orthognathic Surgery"},

	// Facial trauma
	{Code: "21421", Description: "Closed treatment of palatal or maxillary fracture, LeFort I type", Category: "Facial Trauma"},
	{Code: "21422", Description: "Open treatment of palatal or maxillary fracture, LeFort I type", Category: "Facial Trauma", IsFavorite: true},
	{Code: "21423", Description: "Open treatment of complicated palatal or maxillary fracture, LeFort I type", Category: "Facial Trauma"},
	{Code: "21453", Description: "Closed treatment of mandibular fracture with interdental fixation", Category: "Facial Trauma"},
	{Code: "21461", Description: "Open treatment of mandibular fracture, without interdental fixation", Category: "Facial Trauma", IsFavorite: true},
	{Code: "21462", Description: "Open treatment of mandibular fracture, with interdental fixation", Category: "Facial Trauma"},
	{Code: "21470", Description: "Open treatment of complicated mandibular fracture", Category: "Facial Trauma"},
	{Code: "21480", Description: "Closed treatment of temporomandibular dislocation, initial", Category: "Facial Trauma"},

	// Temporomandibular joint
	{Code: "21240", Description: "Arthroplasty, temporomandibular joint, with or without autograft", Category: "TMJ"},
	{Code: "21242", Description: "Arthroplasty, temporomandibular joint, with allograft", Category: "TMJ"},
	{Code: "21243", Description: "Arthroplasty, temporomandibular joint, with prosthetic joint replacement", Category: "TMJ"},
	{Code: "29800", Description: "Arthroscopy, temporomandibular joint, diagnostic", Category: "TMJ"},

	// Pathology
	{Code: "21030", Description: "Excision of benign tumor or cyst of maxilla or zygoma by enucleation", Category: "Pathology"},
	{Code: "21040", Description: "Excision of benign tumor or cyst of mandible, by enucleation", Category: "Pathology"},
	{Code: "21046", Description: "Excision of benign tumor or cyst of mandible, requiring intraoral osteotomy", Category: "Pathology"},
	{Code: "21047", Description: "Excision of benign tumor or cyst of mandible, requiring extraoral osteotomy", Category: "Pathology"},

	// Reconstruction
	{Code: "21215", Description: "Bone graft, mandible, includes obtaining graft", Category: "Reconstruction"},
	{Code: "21210", Description: "Bone graft, nasal, maxillary or malar areas, includes obtaining graft", Category: "Reconstruction"},
	{Code: "21248", Description: "Reconstruction of mandible or maxilla, endosteal implant, partial", Category: "Reconstruction"},
	{Code: "21249", Description: "Reconstruction of mandible or maxilla, endosteal implant, complete", Category: "Reconstruction"},

	// Dentoalveolar
	{Code: "41830", Description: "Alveolectomy, including curettage of osteitis or sequestrectomy", Category: "Dentoalveolar"},
	{Code: "41874", Description: "Alveoloplasty, each quadrant", Category: "Dentoalveolar"},
	{Code: "41899", Description: "Unlisted procedure, dentoalveolar structures", Category: "Dentoalveolar"},
}

var defaultDiagnoses = []Diagnosis{
	{ID: "lefort-i-fracture", Name: "LeFort I Fracture", Category: "Facial Trauma", CPTCodes: []string{"21421", "21422", "21423"}},
	{ID: "mandible-fracture", Name: "Mandible Fracture", Category: "Facial Trauma", CPTCodes: []string{"21453", "21461", "21462", "21470"}},
	{ID: "tmj-dislocation", Name: "TMJ Dislocation", Category: "Facial Trauma", CPTCodes: []string{"21480"}},
	{ID: "maxillary-hypoplasia", Name: "Maxillary Hypoplasia", Category: "Dentofacial Deformity", CPTCodes: []string{"21141", "21142", "21143", "21145"}},
	{ID: "mandibular-prognathism", Name: "Mandibular Prognathism", Category: "Dentofacial Deformity", CPTCodes: []string{"21196", "21198"}},
	{ID: "retrogenia", Name: "Retrogenia", Category: "Dentofacial Deformity", CPTCodes: []string{"21121"}},
	{ID: "apertognathia", Name: "Apertognathia", Category: "Dentofacial Deformity", CPTCodes: []string{"21141", "21142", "21206"}},
	{ID: "tmj-ankylosis", Name: "TMJ Ankylosis", Category: "TMJ Disorder", CPTCodes: []string{"21240", "21242", "21243"}},
	{ID: "internal-derangement-tmj", Name: "Internal Derangement of TMJ", Category: "TMJ Disorder", CPTCodes: []string{"29800", "21240"}},
	{ID: "odontogenic-cyst", Name: "Odontogenic Cyst", Category: "Pathology", CPTCodes: []string{"21040", "21046", "21047"}},
	{ID: "odontogenic-keratocyst", Name: "Odontogenic Keratocyst", Category: "Pathology", CPTCodes: []string{"21046", "21047"}},
	{ID: "benign-maxillary-tumor", Name: "Benign Maxillary Tumor", Category: "Pathology", CPTCodes: []string{"21030"}},
	{ID: "mandibular-atrophy", Name: "Edentulous Mandibular Atrophy", Category: "Reconstruction", CPTCodes: []string{"21215", "21248", "21249"}},
	{ID: "alveolar-ridge-deficiency", Name: "Alveolar Ridge Deficiency", Category: "Reconstruction", CPTCodes: []string{"41830", "41874", "21210"}},
}
