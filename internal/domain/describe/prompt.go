package describe

import (
	"fmt"
	"strings"
)

// animalTerms is the closed set of label names that classify an image as
// an animal picture when no face was detected.
var animalTerms = map[string]struct{}{
	"Dog":    {},
	"Cat":    {},
	"Bird":   {},
	"Horse":  {},
	"Animal": {},
	"Pet":    {},
}

// ClassifySubject decides the primary subject of the image: people when
// any shaped face exists, animal when a label matches the animal term set,
// otherwise objects/scene.
func ClassifySubject(faces []ShapedFace, labels []ShapedLabel) string {
	if len(faces) > 0 {
		return "pessoas"
	}
	for _, l := range labels {
		if _, ok := animalTerms[l.Name]; ok {
			return "animal"
		}
	}
	return "objetos/cena"
}

// BuildPrompt assembles the instruction block sent to the language model:
// the shaped detections, the classified subject type, the fixed style rules
// and worked examples.
func BuildPrompt(faces []ShapedFace, celebrities []ShapedCelebrity, labels []ShapedLabel, subject string) string {
	var b strings.Builder

	b.WriteString("Você é um assistente de acessibilidade que descreve imagens para pessoas com deficiência visual.\n\n")
	b.WriteString("**DADOS DETECTADOS NA IMAGEM:**\n\n")

	if len(faces) > 0 {
		fmt.Fprintf(&b, "PESSOAS DETECTADAS (%d):\n", len(faces))
		for _, f := range faces {
			emotion := f.Emotion
			if emotion == "" {
				emotion = "neutra"
			}
			fmt.Fprintf(&b, "- Pessoa %d: %s, %s, emoção: %s", f.Index, f.Gender, f.AgeRange, emotion)
			if len(f.Attributes) > 0 {
				fmt.Fprintf(&b, ", %s", strings.Join(f.Attributes, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(celebrities) > 0 {
		b.WriteString("CELEBRIDADES (confiança ≥95%):\n")
		for _, c := range celebrities {
			fmt.Fprintf(&b, "- %s (%d%% confiança)\n", c.Name, c.Confidence)
		}
		b.WriteString("\n")
	}

	b.WriteString("OBJETOS/CENAS DETECTADOS (top 20):\n")
	for _, l := range labels {
		fmt.Fprintf(&b, "- %s (%d%%)\n", l.Name, l.Confidence)
	}

	fmt.Fprintf(&b, "\n**TIPO DE IMAGEM:** %s\n", subject)

	b.WriteString(`
**TAREFA:**
Crie UMA descrição em português brasileiro (1-3 frases) seguindo estas regras:

1. **Foco no principal:**
   - Se tem PESSOAS: descreva as pessoas primeiro, depois o contexto
   - Se tem ANIMAL: descreva o animal primeiro, depois o ambiente
   - Se só tem OBJETOS: descreva a cena principal

2. **Seja natural e conciso:**
   - Elimine redundâncias (ex: se tem "Dog" e "Golden Retriever", use só "golden retriever")
   - Una informações relacionadas (ex: "mulher de 25-35 anos, sorrindo" ao invés de "mulher. ela tem 25-35 anos. ela está sorrindo")
   - Use linguagem acessível (evite termos técnicos como "Photography", "Portrait")

3. **Priorize informações úteis:**
   - Idade e gênero de pessoas
   - Emoções visíveis (só se confiança alta)
   - Raça de animais (se detectada)
   - Contexto relevante (indoor/outdoor, objetos importantes)

4. **Ignore labels genéricos quando há específicos:**
   - Ignore: Person, Human, Face, Photography, Portrait, Adult, Female, Male
   - Use só se não houver info específica de faces

5. **Formato da resposta:**
   - 1-3 frases no máximo
   - Português brasileiro natural
   - Sem jargão técnico
   - Sem explicações extras

**EXEMPLOS:**

Entrada: Dog (95%), Golden Retriever (92%), Outdoor (88%), Grass (85%)
Saída: Um golden retriever ao ar livre em um gramado.

Entrada: Pessoa: Mulher, 30-40 anos, feliz, sorrindo | Labels: Phone (90%), Electronics (85%)
Saída: Uma mulher de 30 a 40 anos, sorrindo, segurando um celular.

Entrada: Cat (94%), Kitten (88%), Indoor (92%), Furniture (85%), Couch (82%)
Saída: Um gatinho filhote dentro de casa, em um sofá.

**IMPORTANTE:** Retorne APENAS a descrição final, sem explicações.

DESCRIÇÃO:`)

	return b.String()
}
