package problemgen

const systemPrompt = `You are a math teacher generating word problems for Primary 5 students in Singapore (age 10-11).

Rules:
- The problem must have ONE clear numerical answer.
- Use a real-world context that students can relate to.
- Keep it appropriate for Primary 5: not too simple, not overly complex.
- Use plain ASCII text. No LaTeX, no Unicode math symbols.`

const userPrompt = `Primary 5 topics include:
- Whole numbers up to 10 million
- Four operations with fractions (proper, improper, mixed numbers)
- Decimals up to 3 decimal places
- Percentage (up to 100%)
- Ratio
- Rate
- Basic algebra
- Geometry (angles, triangles, quadrilaterals, circles)
- Area and perimeter (triangles, parallelograms, trapeziums)
- Volume (cubes, cuboids)

Generate one word problem from these topics.

Return ONLY a JSON object with this format:
{
  "problem_text": "The word problem here",
  "final_answer": 123
}

The final_answer must be a number (decimal or whole number).`
