package analyze

// Metadata summarizes one processed upload for the client.
type Metadata struct {
	TamanhoImagem    int     `json:"tamanhoImagem"`
	TamanhoAudio     int     `json:"tamanhoAudio"`
	DuracaoAudio     float64 `json:"duracaoAudio"`
	Voz              string  `json:"voz"`
	LabelsDetectados int     `json:"labelsDetectados"`
	FacesDetectadas  int     `json:"facesDetectadas"`
}

// Response is the success payload of the analysis endpoints. AudioBase64
// carries the raw base64 audio; Audio carries the same bytes as a
// ready-to-play data URL.
type Response struct {
	Descricao   string   `json:"descricao"`
	AudioBase64 string   `json:"audioBase64"`
	Audio       string   `json:"audio"`
	Metadata    Metadata `json:"metadata"`
}
